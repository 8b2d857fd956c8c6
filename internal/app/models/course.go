package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/oms-tech/reviews/internal/pkg/apperrors"
)

var courseCodePattern = regexp.MustCompile(`^([A-Za-z]+)-(.+)$`)

// Course represents a course offered by a department.
type Course struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Number     string    `json:"number"`
	CreatedAt  time.Time `json:"createdAt"`

	// Populated according to the requested EnrichmentLevel
	Stats   []ReviewStats  `json:"reviewStats,omitempty"`
	Reviews []CourseReview `json:"reviews,omitempty"`
}

// CourseCode identifies a course as <department>-<number>
type CourseCode struct {
	Department string
	Number     string
}

// String returns the code in <department>-<number> form
func (c CourseCode) String() string {
	return c.Department + "-" + c.Number
}

// ParseCourseCode splits a code such as "CS-6340" into department and number
func ParseCourseCode(code string) (CourseCode, error) {
	m := courseCodePattern.FindStringSubmatch(code)
	if m == nil {
		return CourseCode{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCourseCode, code)
	}
	return CourseCode{Department: m[1], Number: m[2]}, nil
}

// CourseName pairs a course code with its display name
type CourseName struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
