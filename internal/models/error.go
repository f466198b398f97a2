package models

// MsgValidationErrors is the single entry clients receive when a write is rejected for bad input
const MsgValidationErrors = "validation errors"

// ErrorResponse is the body returned for lookup and delete failures
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the body returned when creating a resource fails
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates a single-message error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorsResponse creates an error list body
func NewErrorsResponse(messages ...string) ErrorsResponse {
	if messages == nil {
		messages = []string{}
	}
	return ErrorsResponse{Errors: messages}
}
