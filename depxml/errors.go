package depxml

import "errors"

// ErrParse wraps a malformed XML document that prevents the indexer from
// making any further progress on a file.
var ErrParse = errors.New("depxml: malformed xml")

// ErrUnknownNodeType is returned when an edge fragment references an endpoint
// that was never created during the node pass — a producer bug in
// handleMember, not a property of the input document.
var ErrUnknownNodeType = errors.New("depxml: edge references an unknown node")

// ErrCancelled is returned when the caller's context is cancelled mid-index.
var ErrCancelled = errors.New("depxml: cancelled")
