// Package query assembles reference-search results: starting-node discovery
// from a compiled search pattern, a kind-specific matcher, a structural
// traversal of every referenced compilation unit, member-access resolution,
// and final result dedup/ordering. Grounded on
// original_source/src/c_sharp_graph/query.rs:Querier/QueryType.
package query

import (
	"fmt"

	"github.com/viant/symbolreach/matcher"
	"github.com/viant/symbolreach/search"
	"github.com/viant/symbolreach/symgraph"
)

// Kind selects which matcher family a Query call uses.
type Kind int

const (
	All Kind = iota
	Method
	Field
	Class
)

func (k Kind) String() string {
	switch k {
	case All:
		return "all"
	case Method:
		return "method"
	case Field:
		return "field"
	case Class:
		return "class"
	default:
		return "unknown"
	}
}

// newMatcher builds the matcher for k over the given definition roots.
func newMatcher(k Kind, g *symgraph.Graph, roots []symgraph.NodeHandle, s *search.Search) (matcher.Matcher, error) {
	switch k {
	case All:
		return matcher.NewNamespace(g, roots, s)
	case Method:
		return matcher.NewMethod(g, roots, s), nil
	case Field:
		return matcher.NewField(g, roots, s), nil
	case Class:
		return matcher.NewClass(g, roots, s), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidArgument, k)
	}
}
