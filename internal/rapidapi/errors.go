package rapidapi

import "fmt"

// FetchError reports a failed listing request.
//
// Fields:
//   - StatusCode: HTTP status, 0 when no response was received.
//   - Message: the transport's status message (e.g. "Forbidden") or the failed step.
//   - Detail: the API's own error message, when it sent one.
//   - Err: underlying network or decoding error, if any.
type FetchError struct {
	StatusCode int
	Message    string
	Detail     string
	Err        error
}

func (e *FetchError) Error() string {
	msg := "fetch prices: " + e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("fetch prices: status %d: %s", e.StatusCode, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }
