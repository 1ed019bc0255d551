package dto

import "time"

// ErrorResponse is the standard JSON error envelope for every failing
// endpoint.
//
// ErrorDetails carries the underlying error text when one exists; Message
// is always the human-readable summary.
type ErrorResponse struct {
	Message      string    `json:"message" example:"no csv file found"`
	ErrorDetails string    `json:"error,omitempty" example:"open data: no such file or directory"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}

// Error implements the error interface so an ErrorResponse can travel as a
// plain error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
