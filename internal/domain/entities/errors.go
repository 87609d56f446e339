package entities

import (
	"errors"
	"fmt"
)

// ErrMalformedTag is matched by errors.Is for every MalformedTagError
var ErrMalformedTag = errors.New("malformed release tag")

// MalformedTagError reports a tag that does not have the expected shape
type MalformedTagError struct {
	Tag      string
	Expected string
}

func (e *MalformedTagError) Error() string {
	return fmt.Sprintf("malformed release tag %q (expected %s)", e.Tag, e.Expected)
}

// Is makes errors.Is(err, ErrMalformedTag) succeed
func (e *MalformedTagError) Is(target error) bool {
	return target == ErrMalformedTag
}

// FetchError reports that the release could not be fetched within the retry budget
type FetchError struct {
	Tag      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch release %s after %d attempts: %v", e.Tag, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a non-2xx response from a remote endpoint
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Body)
}
