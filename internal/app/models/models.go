package models

import (
	"fmt"
	"strings"
)

// EnrichmentLevel controls how much review data is attached to a course read
type EnrichmentLevel string

const (
	EnrichmentNone    EnrichmentLevel = "none"
	EnrichmentStats   EnrichmentLevel = "stats"
	EnrichmentReviews EnrichmentLevel = "reviews"
)

// ParseEnrichmentLevel parses a query value; an empty value means EnrichmentNone.
func ParseEnrichmentLevel(value string) (EnrichmentLevel, error) {
	switch level := EnrichmentLevel(strings.ToLower(strings.TrimSpace(value))); level {
	case "":
		return EnrichmentNone, nil
	case EnrichmentNone, EnrichmentStats, EnrichmentReviews:
		return level, nil
	default:
		return "", fmt.Errorf("unknown enrichment level %q", value)
	}
}

// Term represents a semester term
type Term string

const (
	TermSpring Term = "SPRING"
	TermSummer Term = "SUMMER"
	TermFall   Term = "FALL"
)
