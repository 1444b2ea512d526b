package matcher

import (
	"strings"

	"github.com/viant/symbolreach/search"
	"github.com/viant/symbolreach/symgraph"
)

// Field matches FieldName/property definitions reachable under a set of
// definition roots. Grounded on field_query.rs:FieldSymbols.
type Field struct {
	fields map[string]symgraph.Fqdn
}

// NewField walks roots collecting every FieldName node whose symbol matches s.
func NewField(g *symgraph.Graph, roots []symgraph.NodeHandle, s *search.Search) *Field {
	fields := make(map[string]symgraph.Fqdn)
	walkAll(g, roots, s, func(n symgraph.NodeHandle, t symgraph.SyntaxType) {
		if t != symgraph.FieldName {
			return
		}
		fqdn, ok := symgraph.Reconstruct(g, n)
		if !ok {
			return
		}
		fields[fqdn.Key()] = fqdn
	})
	return &Field{fields: fields}
}

// MatchSymbol expects a "Thing.field" symbol. It reports a match as soon as
// the trailing segment equals any known field's Field component; the leading
// segment is never compared against the owning class. This mirrors
// field_query.rs:symbol_in_namespace: the class/namespace half of the
// comparison is dead code there (the function returns early on the first
// branch), so matching is effectively class-blind. Preserved rather than
// "fixed" per the current-observable-behavior rule.
func (f *Field) MatchSymbol(symbol string) bool {
	parts := strings.Split(symbol, ".")
	if len(parts) != 2 {
		return false
	}
	fieldPart := parts[1]
	for _, fqdn := range f.fields {
		field := ""
		if fqdn.Field != nil {
			field = *fqdn.Field
		}
		if field == fieldPart {
			return true
		}
	}
	return false
}

// MatchFqdn reports whether fqdn exactly matches a known field's FQDN.
func (f *Field) MatchFqdn(fqdn symgraph.Fqdn) bool {
	_, ok := f.fields[fqdn.Key()]
	return ok
}
