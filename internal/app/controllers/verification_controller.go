package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oms-tech/reviews/internal/app/models/dto"
	"github.com/oms-tech/reviews/internal/middleware"
	"github.com/oms-tech/reviews/internal/pkg/apperrors"
)

// CodeSender sends a verification code to a username
type CodeSender interface {
	SendCode(ctx context.Context, username string) error
}

// VerificationController handles verification code requests
type VerificationController struct {
	verificationService CodeSender
	errors              *middleware.ErrorResponder
}

// NewVerificationController creates a new VerificationController
func NewVerificationController(verificationService CodeSender, responder *middleware.ErrorResponder) *VerificationController {
	return &VerificationController{
		verificationService: verificationService,
		errors:              responder,
	}
}

// SendCode asks the verification provider to send a one-time code
// @Summary Send a verification code
// @Description Sends a one-time verification code to the given username
// @Tags verifications
// @Accept json
// @Produce json
// @Param request body dto.SendCodeRequest true "Username to verify"
// @Success 201 {object} dto.EmptyResponse "Code sent"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid username, or too many attempts"
// @Failure 405 "Method not allowed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /verifications [post]
func (c *VerificationController) SendCode(ctx *gin.Context) {
	var req dto.SendCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if !errors.As(err, &maxBytesErr) {
			err = apperrors.ErrMissingIdentifier
		}
		c.errors.HandleAPIError(ctx, err)
		return
	}

	if err := c.verificationService.SendCode(ctx.Request.Context(), req.Username); err != nil {
		c.errors.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EmptyResponse{})
}
