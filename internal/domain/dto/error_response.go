package dto

import "time"

// ErrorResponse is the JSON body returned for every failed request.
//
// The "error" key carries the human readable message; details hold the
// underlying cause when one exists.
type ErrorResponse struct {
	Message      string    `json:"error" example:"Invalid input or missing data: leverage is required"`
	ErrorDetails string    `json:"details,omitempty" example:"binance: http 429: code -1003: Too many requests"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-20T12:00:00Z"`
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// err may be nil.
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
