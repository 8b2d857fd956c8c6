package services

// Services defined in this package:
// - ReviewService: validates and persists verified review submissions
// - VerificationService: sends one-time verification codes
// - RevalidationService: refreshes cached course pages after content changes
// - CourseService: read-only course and semester projections
