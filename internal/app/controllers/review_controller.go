package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oms-tech/reviews/internal/app/models"
	"github.com/oms-tech/reviews/internal/app/models/dto"
	"github.com/oms-tech/reviews/internal/middleware"
	"github.com/oms-tech/reviews/internal/pkg/apperrors"
)

// ReviewSubmitter validates, verifies and stores a review submission
type ReviewSubmitter interface {
	Submit(ctx context.Context, payload map[string]interface{}) (*models.Review, error)
}

// ReviewController handles review submissions
type ReviewController struct {
	reviewService ReviewSubmitter
	errors        *middleware.ErrorResponder
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService ReviewSubmitter, responder *middleware.ErrorResponder) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		errors:        responder,
	}
}

// CreateReview handles a verified review submission
// @Summary Submit a review
// @Description Validates the review, checks the verification code sent to the username and stores the review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review with verification code"
// @Success 201 {object} dto.EmptyResponse "Review created"
// @Failure 400 {object} dto.ErrorsResponse "Validation failed or code mismatch"
// @Failure 405 "Method not allowed"
// @Failure 500 {object} dto.ErrorsResponse "Internal server error"
// @Router /reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	payload, err := decodeObject(ctx)
	if err != nil {
		c.errors.HandleReviewError(ctx, err)
		return
	}

	if _, err := c.reviewService.Submit(ctx.Request.Context(), payload); err != nil {
		c.errors.HandleReviewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EmptyResponse{})
}

// decodeObject reads the request body as a JSON object, keeping numbers as json.Number
func decodeObject(ctx *gin.Context) (map[string]interface{}, error) {
	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.UseNumber()

	var body interface{}
	if err := decoder.Decode(&body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, err
		}
		return nil, apperrors.NewBadRequestError(middleware.MsgBodyNotObject)
	}

	payload, ok := body.(map[string]interface{})
	if !ok {
		return nil, apperrors.NewBadRequestError(middleware.MsgBodyNotObject)
	}
	return payload, nil
}
