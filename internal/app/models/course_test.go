package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/oms-tech/reviews/internal/pkg/apperrors"
)

func TestParseCourseCode(t *testing.T) {
	testCases := []struct {
		code       string
		department string
		number     string
	}{
		{"CS-6340", "CS", "6340"},
		{"ISYE-6501", "ISYE", "6501"},
		{"cse-6242-O01", "cse", "6242-O01"},
	}

	for _, tc := range testCases {
		got, err := ParseCourseCode(tc.code)
		if err != nil {
			t.Errorf("ParseCourseCode(%q) unexpected error: %v", tc.code, err)
			continue
		}
		if got.Department != tc.department || got.Number != tc.number {
			t.Errorf("ParseCourseCode(%q) = %+v, want %s/%s", tc.code, got, tc.department, tc.number)
		}
		if got.String() != tc.code {
			t.Errorf("String() = %q, want %q", got.String(), tc.code)
		}
	}
}

func TestParseCourseCodeInvalid(t *testing.T) {
	for _, code := range []string{"", "CS6340", "6340-CS", "CS-", "-6340", "C1-6340"} {
		_, err := ParseCourseCode(code)
		if !errors.Is(err, apperrors.ErrInvalidCourseCode) {
			t.Errorf("ParseCourseCode(%q) error = %v, want ErrInvalidCourseCode", code, err)
			continue
		}
		if code != "" && !strings.Contains(err.Error(), code) {
			t.Errorf("error %q does not name the code %q", err.Error(), code)
		}
	}
}

func TestParseEnrichmentLevel(t *testing.T) {
	testCases := map[string]EnrichmentLevel{
		"":        EnrichmentNone,
		"none":    EnrichmentNone,
		"STATS":   EnrichmentStats,
		"reviews": EnrichmentReviews,
	}
	for input, want := range testCases {
		got, err := ParseEnrichmentLevel(input)
		if err != nil || got != want {
			t.Errorf("ParseEnrichmentLevel(%q) = %q, %v; want %q", input, got, err, want)
		}
	}

	if _, err := ParseEnrichmentLevel("everything"); err == nil {
		t.Error("expected error for unknown level")
	}
}
