package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrConcurrentModification is returned when a user record changed between
	// lookup and update.
	ErrConcurrentModification = errors.New("apiclient: user was modified concurrently")
	// ErrNotPDF is returned when a report endpoint answers with something other than a PDF.
	ErrNotPDF = errors.New("apiclient: report payload is not a PDF")
)

// Error is the normalized failure of an API call. StatusCode is 0 for
// transport failures, in which case Err holds the cause.
type Error struct {
	Op         string
	StatusCode int
	Message    string
	// Code is the API's machine readable error code, when provided.
	Code string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("apiclient: %s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("apiclient: %s: %d %s", e.Op, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("apiclient: %s: %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ServerMessage returns the message reported by the API, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message == "" {
		return "", false
	}
	return apiErr.Message, true
}

// MessageOr returns the server message of err or fallback.
func MessageOr(err error, fallback string) string {
	if msg, ok := ServerMessage(err); ok {
		return msg
	}
	return fallback
}

func IsTransport(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == 0
}

func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func newStatusError(op string, status int, body []byte) *Error {
	e := &Error{Op: op, StatusCode: status}
	var parsed errorBody
	if len(body) > 0 && json.Unmarshal(body, &parsed) == nil {
		e.Code = parsed.Code
		switch {
		case strings.TrimSpace(parsed.Message) != "":
			e.Message = strings.TrimSpace(parsed.Message)
		case strings.TrimSpace(parsed.Error) != "":
			e.Message = strings.TrimSpace(parsed.Error)
		}
	}
	if status == http.StatusPreconditionFailed {
		e.Err = ErrConcurrentModification
	}
	return e
}
