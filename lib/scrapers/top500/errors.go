package top500

import (
	"errors"
	"fmt"
)

// ErrMalformedReference marks a link whose path does not carry the
// expected numeric id or edition segment.
var ErrMalformedReference = errors.New("malformed reference")

// InvalidEditionError is raised when a (year, month) pair falls outside
// the publication calendar. Construction-time only, no network involved.
type InvalidEditionError struct {
	Year  int
	Month int
}

func (e InvalidEditionError) Error() string {
	return fmt.Sprintf("invalid list edition: %04d/%02d", e.Year, e.Month)
}

// FetchError is a transport-level failure: a non-200 status or a
// failed request. It aborts the fetch that raised it, the caller
// decides whether to skip the edition or give up.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
