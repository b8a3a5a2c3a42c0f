package province

import (
	"errors"
	"fmt"
)

// ErrMalformedMarker indicates a center marker whose path does not start
// with a relative moveto.
var ErrMalformedMarker = errors.New("malformed center marker")

// MarkerError reports the path of a marker that could not be parsed.
type MarkerError struct {
	Path string
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("%s: path %q has no leading moveto", ErrMalformedMarker, e.Path)
}

// Unwrap lets errors.Is match ErrMalformedMarker.
func (e *MarkerError) Unwrap() error {
	return ErrMalformedMarker
}
