package services

import (
	"context"

	"github.com/oms-tech/reviews/internal/app/models"
	"github.com/oms-tech/reviews/internal/pkg/verification"
)

type mockMatcher struct {
	matched bool
	err     error
	calls   int
}

func (m *mockMatcher) Match(_ context.Context, _, _ string) (bool, error) {
	m.calls++
	return m.matched, m.err
}

type mockReviewStore struct {
	err     error
	created []*models.Review
}

func (m *mockReviewStore) Create(_ context.Context, review *models.Review) error {
	if m.err != nil {
		return m.err
	}
	review.ID = "review-1"
	m.created = append(m.created, review)
	return nil
}

type mockSender struct {
	outcome verification.SendOutcome
	err     error
	calls   int
}

func (m *mockSender) Send(_ context.Context, _ string) (verification.SendOutcome, error) {
	m.calls++
	return m.outcome, m.err
}

type mockRevalidator struct {
	err   error
	paths []string
}

func (m *mockRevalidator) Revalidate(_ context.Context, path string) error {
	m.paths = append(m.paths, path)
	return m.err
}

type mockCourseReader struct {
	courses []*models.Course
	err     error
}

func (m *mockCourseReader) List(context.Context) ([]*models.Course, error) {
	return m.courses, m.err
}

func (m *mockCourseReader) ListCodes(context.Context) ([]string, error) {
	codes := []string{}
	for _, c := range m.courses {
		codes = append(codes, c.Code)
	}
	return codes, m.err
}

func (m *mockCourseReader) ListNames(context.Context) ([]models.CourseName, error) {
	names := []models.CourseName{}
	for _, c := range m.courses {
		names = append(names, models.CourseName{Code: c.Code, Name: c.Name})
	}
	return names, m.err
}

func (m *mockCourseReader) GetByCode(_ context.Context, code models.CourseCode) (*models.Course, error) {
	for _, c := range m.courses {
		if c.Code == code.String() {
			return c, nil
		}
	}
	return nil, m.err
}

type mockReviewReader struct {
	stats   map[string][]models.ReviewStats
	reviews map[string][]models.CourseReview
	err     error
}

func (m *mockReviewReader) StatsByCourse(context.Context, []string) (map[string][]models.ReviewStats, error) {
	return m.stats, m.err
}

func (m *mockReviewReader) ReviewsByCourse(context.Context, []string) (map[string][]models.CourseReview, error) {
	return m.reviews, m.err
}

type mockSemesterReader struct {
	limit int
}

func (m *mockSemesterReader) GetRecent(_ context.Context, limit int) ([]models.Semester, error) {
	m.limit = limit
	return []models.Semester{{ID: "s1", Term: models.TermFall, Year: 2024}}, nil
}
