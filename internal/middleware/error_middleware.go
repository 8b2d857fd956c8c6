package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oms-tech/reviews/internal/app/models/dto"
	"github.com/oms-tech/reviews/internal/pkg/apperrors"
	"github.com/oms-tech/reviews/internal/pkg/reporting"
)

// Client-facing messages
const (
	MsgSomethingWentWrong = "Something went wrong, please try again later."
	MsgBodyNotObject      = "Request body must be a JSON object"
	MsgCodeMismatch       = "The supplied code doesn't match the code that was sent."
	MsgMissingUsername    = "Missing username"
	MsgInvalidUsername    = "Invalid username"
	MsgTooManyAttempts    = "Too many attempts, please try again later."
	MsgMissingSignature   = "Missing signature"
	MsgInvalidSignature   = "Invalid signature"
	MsgFailedToRevalidate = "Failed to revalidate"
	MsgBodyTooLarge       = "Request body too large"
	MsgNotFound           = "Resource not found"
)

// ErrorResponder maps service errors to HTTP responses.
// Errors it does not recognize are reported and answered with an opaque 500.
type ErrorResponder struct {
	reporter reporting.Reporter
}

// NewErrorResponder creates an ErrorResponder
func NewErrorResponder(reporter reporting.Reporter) *ErrorResponder {
	return &ErrorResponder{reporter: reporter}
}

// classify returns the status and message of an expected error, or ok=false
func classify(err error) (status int, message string, ok bool) {
	var maxBytesErr *http.MaxBytesError
	var customErr *apperrors.CustomError

	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, MsgBodyTooLarge, true
	case errors.Is(err, apperrors.ErrMissingIdentifier):
		return http.StatusBadRequest, MsgMissingUsername, true
	case errors.Is(err, apperrors.ErrInvalidIdentifier):
		return http.StatusBadRequest, MsgInvalidUsername, true
	case errors.Is(err, apperrors.ErrRateLimited):
		return http.StatusBadRequest, MsgTooManyAttempts, true
	case errors.Is(err, apperrors.ErrMissingSignature):
		return http.StatusUnauthorized, MsgMissingSignature, true
	case errors.Is(err, apperrors.ErrInvalidSignature):
		return http.StatusUnauthorized, MsgInvalidSignature, true
	case errors.Is(err, apperrors.ErrCodeMismatch):
		return http.StatusBadRequest, MsgCodeMismatch, true
	case errors.Is(err, apperrors.ErrInvalidCourseCode):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, apperrors.ErrResourceNotFound):
		if errors.As(err, &customErr) && customErr.Message != "" {
			return http.StatusNotFound, customErr.Message, true
		}
		return http.StatusNotFound, MsgNotFound, true
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, err.Error(), true
	}
	return 0, "", false
}

// HandleAPIError writes the single-message error body
func (e *ErrorResponder) HandleAPIError(c *gin.Context, err error) {
	e.handle(c, err, MsgSomethingWentWrong)
}

// HandleWebhookError writes the webhook error body. Anything past signature
// verification is a revalidation failure.
func (e *ErrorResponder) HandleWebhookError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if apperrors.Is(err, apperrors.ErrMissingSignature, apperrors.ErrInvalidSignature) || errors.As(err, &maxBytesErr) {
		e.handle(c, err, MsgFailedToRevalidate)
		return
	}
	e.fail(c, err, MsgFailedToRevalidate)
}

// HandleReviewError writes the errors-list body of the review endpoint
func (e *ErrorResponder) HandleReviewError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorsResponse(validationErr.Messages...))
		return
	}

	if status, message, ok := classify(err); ok {
		c.AbortWithStatusJSON(status, dto.NewErrorsResponse(message))
		return
	}

	e.report(c, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorsResponse(MsgSomethingWentWrong))
}

func (e *ErrorResponder) handle(c *gin.Context, err error, fallback string) {
	if status, message, ok := classify(err); ok {
		c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
		return
	}
	e.fail(c, err, fallback)
}

func (e *ErrorResponder) fail(c *gin.Context, err error, message string) {
	e.report(c, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(message))
}

func (e *ErrorResponder) report(c *gin.Context, err error) {
	_ = c.Error(err)
	if e.reporter != nil {
		e.reporter.Report(c.Request.Context(), err, "Unhandled error while serving "+c.FullPath())
	}
}
