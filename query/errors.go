package query

import "errors"

// ErrInvalidArgument is returned when a caller-supplied Kind or condition is
// malformed — the query engine's tagged InvalidArgument error kind.
var ErrInvalidArgument = errors.New("query: invalid argument")
