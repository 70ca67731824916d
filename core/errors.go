package core

import (
	"errors"
	"fmt"
)

var (
	// ErrAnchorMissing means the weekly markup carries no parseable base date.
	ErrAnchorMissing = errors.New("week anchor date missing or unparseable")

	// ErrShapeMismatch means an expected markup element is absent.
	ErrShapeMismatch = errors.New("unexpected markup shape")

	// ErrUnknownMapping means a restaurant or corner identifier did not resolve.
	ErrUnknownMapping = errors.New("unknown restaurant or corner")

	// ErrDateMismatch means a daily view was served for another date than requested.
	ErrDateMismatch = errors.New("daily view date mismatch")
)

// FetchError reports a transport failure or a non-2xx response.
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
