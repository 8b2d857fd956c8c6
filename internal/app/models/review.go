package models

import "time"

// Review is a verified student review of a course
type Review struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"courseId"`
	SemesterID string    `json:"semesterId"`
	Rating     float64   `json:"rating"`
	Difficulty float64   `json:"difficulty"`
	Workload   float64   `json:"workload"`
	Body       string    `json:"body"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewStats is the aggregate-shaped projection of a review: no body, no semester
type ReviewStats struct {
	ID         string    `json:"id"`
	Rating     float64   `json:"rating"`
	Difficulty float64   `json:"difficulty"`
	Workload   float64   `json:"workload"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CourseReview is the full public projection of a review with its semester resolved
type CourseReview struct {
	ID         string    `json:"id"`
	Rating     float64   `json:"rating"`
	Difficulty float64   `json:"difficulty"`
	Workload   float64   `json:"workload"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
	Semester   Semester  `json:"semester"`
}
