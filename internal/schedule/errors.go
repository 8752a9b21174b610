package schedule

import "errors"

// ErrMalformedInput is returned when time or day text does not match the
// expected pattern. Callers skip the offending meeting or course.
var ErrMalformedInput = errors.New("malformed input")
