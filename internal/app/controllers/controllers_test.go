package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/oms-tech/reviews/internal/app/models"
	"github.com/oms-tech/reviews/internal/middleware"
	"github.com/oms-tech/reviews/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopReporter struct{}

func (nopReporter) Report(context.Context, error, string) {}

func setupGin() (*gin.Engine, *middleware.ErrorResponder) {
	return gin.New(), middleware.NewErrorResponder(nopReporter{})
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- review controller ---

type mockSubmitter struct {
	payload map[string]interface{}
	err     error
}

func (m *mockSubmitter) Submit(_ context.Context, payload map[string]interface{}) (*models.Review, error) {
	m.payload = payload
	if m.err != nil {
		return nil, m.err
	}
	return &models.Review{ID: "r1"}, nil
}

func TestCreateReviewRejectsNonObjectBodies(t *testing.T) {
	for _, body := range []string{"", "[]", `"text"`, "42", "{not json"} {
		r, responder := setupGin()
		submitter := &mockSubmitter{}
		r.POST("/reviews", NewReviewController(submitter, responder).CreateReview)

		w := perform(r, http.MethodPost, "/reviews", body)
		if w.Code != http.StatusBadRequest || w.Body.String() != `{"errors":["Request body must be a JSON object"]}` {
			t.Errorf("body %q: got %d %s", body, w.Code, w.Body.String())
		}
		if submitter.payload != nil {
			t.Errorf("body %q reached the service", body)
		}
	}
}

func TestCreateReviewKeepsNumbersExact(t *testing.T) {
	r, responder := setupGin()
	submitter := &mockSubmitter{}
	r.POST("/reviews", NewReviewController(submitter, responder).CreateReview)

	perform(r, http.MethodPost, "/reviews", `{"rating":4.5}`)

	if n, ok := submitter.payload["rating"].(json.Number); !ok || n.String() != "4.5" {
		t.Errorf("rating decoded as %T %v", submitter.payload["rating"], submitter.payload["rating"])
	}
}

func TestCreateReviewUpstreamFailure(t *testing.T) {
	r, responder := setupGin()
	r.POST("/reviews", NewReviewController(&mockSubmitter{err: errors.New("db down")}, responder).CreateReview)

	w := perform(r, http.MethodPost, "/reviews", `{}`)
	if w.Code != http.StatusInternalServerError ||
		w.Body.String() != `{"errors":["Something went wrong, please try again later."]}` {
		t.Errorf("got %d %s", w.Code, w.Body.String())
	}
}

// --- verification controller ---

type mockCodeSender struct {
	username string
	err      error
}

func (m *mockCodeSender) SendCode(_ context.Context, username string) error {
	m.username = username
	return m.err
}

func TestSendCodeMissingUsername(t *testing.T) {
	for _, body := range []string{"", "{}", `{"username":""}`, `{"username":42}`, "[1]"} {
		r, responder := setupGin()
		sender := &mockCodeSender{}
		r.POST("/verifications", NewVerificationController(sender, responder).SendCode)

		w := perform(r, http.MethodPost, "/verifications", body)
		if w.Code != http.StatusBadRequest || w.Body.String() != `{"error":"Missing username"}` {
			t.Errorf("body %q: got %d %s", body, w.Code, w.Body.String())
		}
		if sender.username != "" {
			t.Errorf("body %q reached the service", body)
		}
	}
}

func TestSendCodeErrors(t *testing.T) {
	testCases := []struct {
		err    error
		status int
		body   string
	}{
		{apperrors.ErrRateLimited, http.StatusBadRequest, `{"error":"Too many attempts, please try again later."}`},
		{errors.New("provider timeout"), http.StatusInternalServerError, `{"error":"Something went wrong, please try again later."}`},
	}

	for _, tc := range testCases {
		r, responder := setupGin()
		r.POST("/verifications", NewVerificationController(&mockCodeSender{err: tc.err}, responder).SendCode)

		w := perform(r, http.MethodPost, "/verifications", `{"username":"jdoe3"}`)
		if w.Code != tc.status || w.Body.String() != tc.body {
			t.Errorf("%v: got %d %s", tc.err, w.Code, w.Body.String())
		}
	}
}

// --- course controller ---

type mockCourseService struct {
	level models.EnrichmentLevel
	limit int
	err   error
}

func (m *mockCourseService) GetCourseCodes(context.Context) ([]string, error) {
	return []string{"CS-6340"}, m.err
}

func (m *mockCourseService) GetCourseNames(context.Context) ([]models.CourseName, error) {
	return []models.CourseName{{Code: "CS-6340", Name: "Software Analysis"}}, m.err
}

func (m *mockCourseService) GetRecentSemesters(_ context.Context, limit int) ([]models.Semester, error) {
	m.limit = limit
	return []models.Semester{}, m.err
}

func (m *mockCourseService) GetCourse(_ context.Context, code string, level models.EnrichmentLevel) (*models.Course, error) {
	m.level = level
	if _, err := models.ParseCourseCode(code); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	return &models.Course{ID: "c1", Code: code}, nil
}

func (m *mockCourseService) GetCourses(_ context.Context, level models.EnrichmentLevel) ([]*models.Course, error) {
	m.level = level
	return []*models.Course{}, m.err
}

func courseRouter(svc *mockCourseService) *gin.Engine {
	r, responder := setupGin()
	c := NewCourseController(svc, responder)
	r.GET("/courses", c.GetCourses)
	r.GET("/courses/codes", c.GetCourseCodes)
	r.GET("/courses/names", c.GetCourseNames)
	r.GET("/courses/:code", c.GetCourse)
	r.GET("/semesters", c.GetRecentSemesters)
	return r
}

func TestGetCoursesIncludeParsing(t *testing.T) {
	testCases := []struct {
		query  string
		status int
		level  models.EnrichmentLevel
	}{
		{"", http.StatusOK, models.EnrichmentNone},
		{"?include=stats", http.StatusOK, models.EnrichmentStats},
		{"?include=reviews", http.StatusOK, models.EnrichmentReviews},
		{"?include=everything", http.StatusBadRequest, ""},
	}

	for _, tc := range testCases {
		svc := &mockCourseService{}
		w := perform(courseRouter(svc), http.MethodGet, "/courses"+tc.query, "")
		if w.Code != tc.status {
			t.Errorf("%q: status = %d, want %d", tc.query, w.Code, tc.status)
		}
		if svc.level != tc.level {
			t.Errorf("%q: level = %q, want %q", tc.query, svc.level, tc.level)
		}
	}
}

func TestGetCourse(t *testing.T) {
	testCases := []struct {
		path   string
		err    error
		status int
	}{
		{"/courses/CS-6340?include=stats", nil, http.StatusOK},
		{"/courses/6340", nil, http.StatusBadRequest},
		{"/courses/CS-0000", apperrors.NewResourceNotFoundError("course CS-0000 not found"), http.StatusNotFound},
	}

	for _, tc := range testCases {
		w := perform(courseRouter(&mockCourseService{err: tc.err}), http.MethodGet, tc.path, "")
		if w.Code != tc.status {
			t.Errorf("%s: status = %d, want %d (%s)", tc.path, w.Code, tc.status, w.Body.String())
		}
	}
}

func TestStaticCourseRoutesWinOverCode(t *testing.T) {
	r := courseRouter(&mockCourseService{})

	w := perform(r, http.MethodGet, "/courses/codes", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"data":["CS-6340"]`) {
		t.Errorf("codes: %d %s", w.Code, w.Body.String())
	}

	w = perform(r, http.MethodGet, "/courses/names", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"Software Analysis"`) {
		t.Errorf("names: %d %s", w.Code, w.Body.String())
	}
}

func TestGetRecentSemestersLimit(t *testing.T) {
	svc := &mockCourseService{}
	r := courseRouter(svc)

	if w := perform(r, http.MethodGet, "/semesters", ""); w.Code != http.StatusOK || svc.limit != 4 {
		t.Errorf("default: %d, limit %d", w.Code, svc.limit)
	}
	if w := perform(r, http.MethodGet, "/semesters?limit=12", ""); w.Code != http.StatusOK || svc.limit != 12 {
		t.Errorf("explicit: %d, limit %d", w.Code, svc.limit)
	}
	for _, q := range []string{"0", "51", "x"} {
		if w := perform(r, http.MethodGet, "/semesters?limit="+q, ""); w.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d, want 400", q, w.Code)
		}
	}
}

// --- health controller ---

type mockPinger struct{ err error }

func (m mockPinger) Ping(context.Context) error { return m.err }

func TestPing(t *testing.T) {
	for _, tc := range []struct {
		err    error
		status int
	}{
		{nil, http.StatusOK},
		{errors.New("no route to host"), http.StatusServiceUnavailable},
	} {
		r, _ := setupGin()
		r.GET("/ping", NewHealthController(mockPinger{err: tc.err}).Ping)

		if w := perform(r, http.MethodGet, "/ping", ""); w.Code != tc.status {
			t.Errorf("ping with %v: status = %d, want %d", tc.err, w.Code, tc.status)
		}
	}
}
