package dto

import "time"

// ErrorResponse is the JSON body returned for every failed request.
//
// It also implements error so handlers and middleware can pass it around
// before rendering.
type ErrorResponse struct {
	Message      string    `json:"message" example:"bad request"`               // Human readable summary
	ErrorDetails string    `json:"error,omitempty" example:"no record matches"` // Underlying error, if any
	Timestamp    time.Time `json:"timestamp"`                                   // When the error was produced (UTC)
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
//
// Parameters:
//   - message: summary shown to the client.
//   - err: optional underlying error; its text becomes ErrorDetails.
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

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
