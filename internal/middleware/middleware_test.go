package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/oms-tech/reviews/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingReporter struct {
	errs []error
}

func (r *recordingReporter) Report(_ context.Context, err error, _ string) {
	r.errs = append(r.errs, err)
}

func serve(handler gin.HandlerFunc, mw ...gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(mw...)
	r.POST("/test", handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"a":1}`))
	r.ServeHTTP(w, req)
	return w
}

func TestHandleAPIError(t *testing.T) {
	testCases := []struct {
		err      error
		status   int
		message  string
		reported bool
	}{
		{apperrors.ErrMissingIdentifier, http.StatusBadRequest, MsgMissingUsername, false},
		{apperrors.ErrInvalidIdentifier, http.StatusBadRequest, MsgInvalidUsername, false},
		{apperrors.ErrRateLimited, http.StatusBadRequest, MsgTooManyAttempts, false},
		{apperrors.ErrMissingSignature, http.StatusUnauthorized, MsgMissingSignature, false},
		{fmt.Errorf("wrapped: %w", apperrors.ErrInvalidSignature), http.StatusUnauthorized, MsgInvalidSignature, false},
		{apperrors.NewResourceNotFoundError("course CS-1 not found"), http.StatusNotFound, "course CS-1 not found", false},
		{&http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge, MsgBodyTooLarge, false},
		{errors.New("boom"), http.StatusInternalServerError, MsgSomethingWentWrong, true},
	}

	for _, tc := range testCases {
		reporter := &recordingReporter{}
		responder := NewErrorResponder(reporter)

		w := serve(func(c *gin.Context) { responder.HandleAPIError(c, tc.err) })

		if w.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.status)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["error"] != tc.message {
			t.Errorf("%v: body = %s", tc.err, w.Body.String())
		}
		if got := len(reporter.errs) == 1; got != tc.reported {
			t.Errorf("%v: reported = %v, want %v", tc.err, got, tc.reported)
		}
	}
}

func TestHandleReviewError(t *testing.T) {
	testCases := []struct {
		err      error
		status   int
		messages []string
		reported bool
	}{
		{apperrors.NewValidationError([]string{"rating is required", "body is required"}), http.StatusBadRequest,
			[]string{"rating is required", "body is required"}, false},
		{apperrors.ErrCodeMismatch, http.StatusBadRequest, []string{MsgCodeMismatch}, false},
		{apperrors.NewBadRequestError(MsgBodyNotObject), http.StatusBadRequest, []string{MsgBodyNotObject}, false},
		{errors.New("store down"), http.StatusInternalServerError, []string{MsgSomethingWentWrong}, true},
	}

	for _, tc := range testCases {
		reporter := &recordingReporter{}
		responder := NewErrorResponder(reporter)

		w := serve(func(c *gin.Context) { responder.HandleReviewError(c, tc.err) })

		if w.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.status)
		}
		var body struct {
			Errors []string `json:"errors"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if strings.Join(body.Errors, "|") != strings.Join(tc.messages, "|") {
			t.Errorf("%v: errors = %v, want %v", tc.err, body.Errors, tc.messages)
		}
		if got := len(reporter.errs) == 1; got != tc.reported {
			t.Errorf("%v: reported = %v, want %v", tc.err, got, tc.reported)
		}
	}
}

func TestHandleWebhookError(t *testing.T) {
	reporter := &recordingReporter{}
	responder := NewErrorResponder(reporter)

	w := serve(func(c *gin.Context) { responder.HandleWebhookError(c, apperrors.ErrInvalidSignature) })
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), MsgInvalidSignature) {
		t.Errorf("signature failure: %d %s", w.Code, w.Body.String())
	}

	// past verification even client-looking errors are revalidation failures
	w = serve(func(c *gin.Context) { responder.HandleWebhookError(c, apperrors.ErrInvalidCourseCode) })
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), MsgFailedToRevalidate) {
		t.Errorf("revalidation failure: %d %s", w.Code, w.Body.String())
	}
	if len(reporter.errs) != 1 {
		t.Errorf("reported %d errors, want 1", len(reporter.errs))
	}
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	var seen string
	w := serve(func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	}, RequestID())

	if seen == "" || w.Header().Get(RequestIDHeader) != seen {
		t.Errorf("request id = %q, header = %q", seen, w.Header().Get(RequestIDHeader))
	}
}

func TestRequestIDKeepsCallerValueAndLogsIt(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(base.WithContext(c.Request.Context()))
	}, RequestID())
	r.GET("/test", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("hello")
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("header = %q", w.Header().Get(RequestIDHeader))
	}
	if !strings.Contains(buf.String(), `"request_id":"abc-123"`) {
		t.Errorf("log line missing request id: %s", buf.String())
	}
}

func TestRequestIDRejectsOversizedValue(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", requestIDMaxLen+1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); len(got) > requestIDMaxLen || got == "" {
		t.Errorf("header = %q", got)
	}
}

func TestBodyLimit(t *testing.T) {
	responder := NewErrorResponder(&recordingReporter{})

	w := serve(func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			responder.HandleAPIError(c, err)
			return
		}
		c.Status(http.StatusOK)
	}, BodyLimit(3))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", w.Code)
	}
}
