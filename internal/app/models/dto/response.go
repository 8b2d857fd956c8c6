package dto

import "time"

// ErrorResponse is the single-message error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an ErrorResponse
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// APIResponse wraps the payload of read endpoints
type APIResponse struct {
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewAPIResponse creates an APIResponse stamped with the current time
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// EmptyResponse is the `{}` body of successful writes
type EmptyResponse struct{}
