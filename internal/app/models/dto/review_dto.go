package dto

// CreateReviewRequest is a review submission that passed validation.ReviewSchema
type CreateReviewRequest struct {
	CourseID   string  `json:"courseId"`
	SemesterID string  `json:"semesterId"`
	Rating     float64 `json:"rating"`
	Difficulty float64 `json:"difficulty"`
	Workload   float64 `json:"workload"`
	Body       string  `json:"body"`
	Username   string  `json:"username"`
	Code       string  `json:"code"`
}

// ErrorsResponse is the error body of the review endpoint
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorsResponse wraps messages, never encoding a null list
func NewErrorsResponse(messages ...string) ErrorsResponse {
	if messages == nil {
		messages = []string{}
	}
	return ErrorsResponse{Errors: messages}
}
