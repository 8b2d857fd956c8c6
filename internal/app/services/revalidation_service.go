package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/oms-tech/reviews/internal/app/models"
	"github.com/oms-tech/reviews/internal/app/models/dto"
	"github.com/oms-tech/reviews/internal/pkg/logger"
)

// ErrMissingCourseCode is returned when a content change event names no course
var ErrMissingCourseCode = errors.New("content change event has no course code")

// Revalidator refreshes a cached page of the frontend
type Revalidator interface {
	Revalidate(ctx context.Context, path string) error
}

// RevalidationService refreshes course pages after content changes
type RevalidationService struct {
	revalidator Revalidator
}

// NewRevalidationService creates a new revalidation service instance
func NewRevalidationService(revalidator Revalidator) *RevalidationService {
	return &RevalidationService{revalidator: revalidator}
}

// CoursePath returns the frontend path of a course page
func CoursePath(code string) string {
	return "/courses/" + url.PathEscape(code)
}

// OnContentChange parses an already authenticated event body and revalidates the course page it names
func (s *RevalidationService) OnContentChange(ctx context.Context, body []byte) (string, error) {
	var event dto.ReviewChangeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return "", fmt.Errorf("error decoding content change event: %w", err)
	}

	code := strings.TrimSpace(event.Course.Code)
	if code == "" {
		return "", ErrMissingCourseCode
	}
	if _, err := models.ParseCourseCode(code); err != nil {
		return "", err
	}

	path := CoursePath(code)
	if err := s.revalidator.Revalidate(ctx, path); err != nil {
		return "", fmt.Errorf("error revalidating %s: %w", path, err)
	}

	logger.FromContext(ctx).Info().Str("path", path).Msg("Course page revalidated")
	return path, nil
}
