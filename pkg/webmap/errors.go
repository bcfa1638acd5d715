package webmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for the extraction stages. Each aborts the whole run;
// nothing in this pipeline retries or falls back.
var (
	// ErrEmptyResponse reports a fetch that returned a zero-length body.
	ErrEmptyResponse = errors.New("no webpage sources were retrieved")

	// ErrMissingMarker reports an absent script-tag delimiter.
	ErrMissingMarker = errors.New("marker not found in webpage sources")

	// ErrMissingAssignment reports an absent JS variable assignment
	// inside the script block.
	ErrMissingAssignment = errors.New("assignment not found in script")

	// ErrMalformedLiteral reports an embedded literal that could not be
	// rewritten into valid JSON.
	ErrMalformedLiteral = errors.New("malformed object literal")

	// ErrBadSchema reports a literal that parsed but does not have the
	// feature-collection shape.
	ErrBadSchema = errors.New("unexpected feature collection schema")
)

// FetchError reports a failed page retrieval with enough context to tell
// transport failures from bad upstream responses.
type FetchError struct {
	URL        string // The page being fetched
	StatusCode int    // HTTP status code, 0 if the request never completed
	Err        error  // Underlying transport or read error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As.
func (e *FetchError) Unwrap() error {
	return e.Err
}
