package kdtree

import "errors"

// ErrInvalidArgument is returned for points outside the unit square,
// malformed rectangles and non-positive neighbor counts. Errors returned by
// this package wrap it with detail, so test for it with errors.Is.
var ErrInvalidArgument = errors.New("kdtree: invalid argument")
