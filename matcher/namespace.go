package matcher

import (
	"errors"

	"github.com/viant/symbolreach/search"
	"github.com/viant/symbolreach/symgraph"
)

// ErrNamespaceNotFound is returned when no node under the supplied
// definition roots could seed a namespace FQDN at all — the roots don't
// describe any namespace/class/method/field.
var ErrNamespaceNotFound = errors.New("matcher: namespace fqdn not found")

// Namespace composes Class, Field and Method matchers with the namespace
// FQDN discovered at the roots. Grounded on
// namespace_query.rs:NamespaceSymbols.
type Namespace struct {
	classes   *Class
	fields    *Field
	methods   *Method
	namespace symgraph.Fqdn
}

// NewNamespace walks roots once to discover the namespace FQDN (the first
// node under any root whose SyntaxType is one of the four hierarchical
// kinds), then builds Class/Field/Method matchers over the same roots.
func NewNamespace(g *symgraph.Graph, roots []symgraph.NodeHandle, s *search.Search) (*Namespace, error) {
	classes := NewClass(g, roots, s)
	fields := NewField(g, roots, s)
	methods := NewMethod(g, roots, s)

	n, ok := walkFirst(g, roots, s, isHierarchical)
	if !ok {
		return nil, ErrNamespaceNotFound
	}
	fqdn, ok := symgraph.Reconstruct(g, n)
	if !ok {
		return nil, ErrNamespaceNotFound
	}

	return &Namespace{classes: classes, fields: fields, methods: methods, namespace: fqdn}, nil
}

func isHierarchical(t symgraph.SyntaxType) bool {
	switch t {
	case symgraph.NamespaceDeclaration, symgraph.ClassDef, symgraph.MethodName, symgraph.FieldName:
		return true
	default:
		return false
	}
}

// MatchSymbol matches the namespace's own name, or delegates to the
// composed class/field/method matchers.
func (n *Namespace) MatchSymbol(symbol string) bool {
	if n.namespace.Namespace != nil && *n.namespace.Namespace == symbol {
		return true
	}
	return n.classes.MatchSymbol(symbol) || n.fields.MatchSymbol(symbol) || n.methods.MatchSymbol(symbol)
}

// MatchFqdn delegates to the composed class/field/method matchers — the
// namespace's own FQDN is deliberately not checked here, mirroring
// namespace_query.rs:SymbolMatcher::match_fqdn.
func (n *Namespace) MatchFqdn(fqdn symgraph.Fqdn) bool {
	return n.classes.MatchFqdn(fqdn) || n.fields.MatchFqdn(fqdn) || n.methods.MatchFqdn(fqdn)
}
