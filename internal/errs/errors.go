// Package errs holds the error taxonomy shared by the pipeline stages.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes a caller has to tell apart.
var (
	// ErrFetch marks a network, transport, status or decoding failure.
	ErrFetch = errors.New("fetch failed")

	// ErrEmptyContent marks a successful fetch that produced no usable text.
	ErrEmptyContent = errors.New("no usable content")

	// ErrInvalidArgument marks a malformed caller parameter.
	ErrInvalidArgument = errors.New("invalid argument")
)

// FetchError carries the URL and the underlying cause of a failed fetch.
// errors.Is(err, ErrFetch) holds for every FetchError.
type FetchError struct {
	URL   string
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
}

// Unwrap exposes both ErrFetch and the cause to errors.Is / errors.As.
func (e *FetchError) Unwrap() []error {
	return []error{ErrFetch, e.Cause}
}

// NewFetchError wraps cause for url.
func NewFetchError(url string, cause error) *FetchError {
	return &FetchError{URL: url, Cause: cause}
}

// Invalid returns an ErrInvalidArgument annotated with a formatted reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
