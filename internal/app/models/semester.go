package models

import "time"

// Semester is a term in which a course was taken
type Semester struct {
	ID        string    `json:"id"`
	Term      Term      `json:"term"`
	Year      int       `json:"year"`
	StartDate time.Time `json:"startDate"`
}
