package services

import (
	"context"
	"fmt"

	"github.com/oms-tech/reviews/internal/app/models"
	"github.com/oms-tech/reviews/internal/app/models/dto"
	"github.com/oms-tech/reviews/internal/pkg/apperrors"
	"github.com/oms-tech/reviews/internal/pkg/logger"
	"github.com/oms-tech/reviews/internal/pkg/validation"
)

// CodeMatcher checks a verification code previously sent to username
type CodeMatcher interface {
	Match(ctx context.Context, username, code string) (bool, error)
}

// ReviewStore persists reviews
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
}

// ReviewService handles verified review submissions
type ReviewService struct {
	schema  *validation.Schema
	matcher CodeMatcher
	store   ReviewStore
}

// NewReviewService creates a new review service instance
func NewReviewService(matcher CodeMatcher, store ReviewStore) *ReviewService {
	return &ReviewService{
		schema:  validation.ReviewSchema(),
		matcher: matcher,
		store:   store,
	}
}

// ValidateReview checks payload against the review rules and decodes it.
// A non-empty violation list means the payload must be rejected.
func (s *ReviewService) ValidateReview(payload map[string]interface{}) (*dto.CreateReviewRequest, []string, error) {
	req := &dto.CreateReviewRequest{}
	violations, err := s.schema.Decode(payload, req)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding review: %w", err)
	}
	if len(violations) > 0 {
		return nil, violations, nil
	}
	return req, nil, nil
}

// Submit validates payload, confirms the verification code and persists the review.
// The review is only written after the code has been confirmed in this call.
func (s *ReviewService) Submit(ctx context.Context, payload map[string]interface{}) (*models.Review, error) {
	req, violations, err := s.ValidateReview(payload)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	matched, err := s.matcher.Match(ctx, req.Username, req.Code)
	if err != nil {
		return nil, fmt.Errorf("error checking verification code: %w", err)
	}
	if !matched {
		logger.FromContext(ctx).Info().Str("username", req.Username).Msg("Verification code mismatch")
		return nil, apperrors.ErrCodeMismatch
	}

	review := &models.Review{
		CourseID:   req.CourseID,
		SemesterID: req.SemesterID,
		Rating:     req.Rating,
		Difficulty: req.Difficulty,
		Workload:   req.Workload,
		Body:       req.Body,
		Username:   req.Username,
	}

	if err := s.store.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("error creating review: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("reviewID", review.ID).
		Str("courseID", review.CourseID).
		Msg("Review created")

	return review, nil
}
