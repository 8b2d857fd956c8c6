package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oms-tech/reviews/internal/app/models/dto"
	"github.com/oms-tech/reviews/internal/middleware"
)

// SignatureVerifier authenticates a raw webhook body against its signature header
type SignatureVerifier interface {
	Verify(body []byte, header string) error
}

// ContentChangeHandler reacts to an authenticated content change event
type ContentChangeHandler interface {
	OnContentChange(ctx context.Context, body []byte) (string, error)
}

// WebhookController handles content management webhooks
type WebhookController struct {
	revalidationService ContentChangeHandler
	verifier            SignatureVerifier
	signatureHeader     string
	errors              *middleware.ErrorResponder
}

// NewWebhookController creates a new WebhookController
func NewWebhookController(
	revalidationService ContentChangeHandler,
	verifier SignatureVerifier,
	signatureHeader string,
	responder *middleware.ErrorResponder,
) *WebhookController {
	return &WebhookController{
		revalidationService: revalidationService,
		verifier:            verifier,
		signatureHeader:     signatureHeader,
		errors:              responder,
	}
}

// ContentChanged revalidates the course page named by a signed content event
// @Summary Content change webhook
// @Description Verifies the webhook signature over the raw body, then revalidates the affected course page
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body dto.ReviewChangeEvent true "Content change event"
// @Success 200 {object} dto.RevalidateResponse "Page revalidated"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid signature"
// @Failure 405 "Method not allowed"
// @Failure 500 {object} dto.ErrorResponse "Failed to revalidate"
// @Router /webhooks/content [post]
func (c *WebhookController) ContentChanged(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		c.errors.HandleWebhookError(ctx, err)
		return
	}

	if err := c.verifier.Verify(body, ctx.GetHeader(c.signatureHeader)); err != nil {
		c.errors.HandleWebhookError(ctx, err)
		return
	}

	if _, err := c.revalidationService.OnContentChange(ctx.Request.Context(), body); err != nil {
		c.errors.HandleWebhookError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RevalidateResponse{Revalidated: true})
}
