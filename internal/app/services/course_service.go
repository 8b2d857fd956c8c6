package services

import (
	"context"
	"fmt"

	"github.com/oms-tech/reviews/internal/app/models"
	"github.com/oms-tech/reviews/internal/pkg/apperrors"
)

const (
	DefaultSemesterLimit = 4
	MaxSemesterLimit     = 50
)

// CourseReader reads courses from the content store
type CourseReader interface {
	List(ctx context.Context) ([]*models.Course, error)
	ListCodes(ctx context.Context) ([]string, error)
	ListNames(ctx context.Context) ([]models.CourseName, error)
	GetByCode(ctx context.Context, code models.CourseCode) (*models.Course, error)
}

// ReviewReader reads review projections grouped by course ID
type ReviewReader interface {
	StatsByCourse(ctx context.Context, courseIDs []string) (map[string][]models.ReviewStats, error)
	ReviewsByCourse(ctx context.Context, courseIDs []string) (map[string][]models.CourseReview, error)
}

// SemesterReader reads semesters from the content store
type SemesterReader interface {
	GetRecent(ctx context.Context, limit int) ([]models.Semester, error)
}

// CourseService handles read-only course and semester operations
type CourseService struct {
	courses   CourseReader
	reviews   ReviewReader
	semesters SemesterReader
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseReader, reviews ReviewReader, semesters SemesterReader) *CourseService {
	return &CourseService{
		courses:   courses,
		reviews:   reviews,
		semesters: semesters,
	}
}

// GetCourseCodes retrieves every course code
func (s *CourseService) GetCourseCodes(ctx context.Context) ([]string, error) {
	codes, err := s.courses.ListCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course codes: %w", err)
	}
	return codes, nil
}

// GetCourseNames retrieves every course code with its name
func (s *CourseService) GetCourseNames(ctx context.Context) ([]models.CourseName, error) {
	names, err := s.courses.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course names: %w", err)
	}
	return names, nil
}

// GetRecentSemesters retrieves up to limit semesters, newest first
func (s *CourseService) GetRecentSemesters(ctx context.Context, limit int) ([]models.Semester, error) {
	if limit < 1 || limit > MaxSemesterLimit {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("limit must be between 1 and %d", MaxSemesterLimit))
	}

	semesters, err := s.semesters.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving semesters: %w", err)
	}
	return semesters, nil
}

// GetCourse retrieves a course by its code with the requested amount of review data
func (s *CourseService) GetCourse(ctx context.Context, code string, level models.EnrichmentLevel) (*models.Course, error) {
	parsed, err := models.ParseCourseCode(code)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByCode(ctx, parsed)
	if err != nil {
		return nil, err
	}

	if err := s.enrich(ctx, []*models.Course{course}, level); err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourses retrieves every course with the requested amount of review data
func (s *CourseService) GetCourses(ctx context.Context, level models.EnrichmentLevel) ([]*models.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	for _, course := range courses {
		if _, err := models.ParseCourseCode(course.Code); err != nil {
			return nil, fmt.Errorf("course %s: %w", course.ID, err)
		}
	}

	if err := s.enrich(ctx, courses, level); err != nil {
		return nil, err
	}
	return courses, nil
}

// enrich attaches review data to courses according to level
func (s *CourseService) enrich(ctx context.Context, courses []*models.Course, level models.EnrichmentLevel) error {
	ids := make([]string, 0, len(courses))
	for _, course := range courses {
		ids = append(ids, course.ID)
	}

	switch level {
	case models.EnrichmentStats:
		stats, err := s.reviews.StatsByCourse(ctx, ids)
		if err != nil {
			return fmt.Errorf("error retrieving review stats: %w", err)
		}
		for _, course := range courses {
			course.Stats = stats[course.ID]
		}
	case models.EnrichmentReviews:
		reviews, err := s.reviews.ReviewsByCourse(ctx, ids)
		if err != nil {
			return fmt.Errorf("error retrieving reviews: %w", err)
		}
		for _, course := range courses {
			course.Reviews = reviews[course.ID]
		}
	}

	return nil
}
