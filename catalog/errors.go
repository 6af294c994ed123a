package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an id has no corresponding record.
	ErrNotFound = errors.New("not found")
	// ErrInvalid is returned when input is rejected, by the backend or by the client-side checks.
	ErrInvalid = errors.New("invalid data")
	// ErrUnreachable is returned when the backend cannot be reached at all.
	ErrUnreachable = errors.New("api unreachable")
	// ErrHTTP is returned for any other non-2xx status.
	ErrHTTP = errors.New("http error")
	// ErrNoSubject is returned by item reads called with a zero id.
	ErrNoSubject = errors.New("no subject")
)

/* APIError is a classified failure of a backend call.
 * Kind is one of the sentinels above so callers can use errors.Is.
 * Message is ready to be shown to the user.
 */
type APIError struct {
	Kind       error
	StatusCode int
	Message    string
	Method     string
	URL        string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	return target == e.Kind
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFoundError builds a not-found failure with a user message.
func NotFoundError(message string) *APIError {
	return &APIError{Kind: ErrNotFound, StatusCode: 404, Message: message}
}

// ValidationError reports a client-side check that failed before any request was sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Message returns the text to show for err: the user message for classified
// failures, the raw error text otherwise.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func unreachableMessage(baseURL string) string {
	return fmt.Sprintf("Não foi possível conectar com a API em %s. Verifique se o servidor está rodando.", baseURL)
}

// UnreachableError builds the connectivity failure for baseURL.
func UnreachableError(baseURL string, err error) *APIError {
	return &APIError{Kind: ErrUnreachable, Message: unreachableMessage(baseURL), URL: baseURL, Err: err}
}
