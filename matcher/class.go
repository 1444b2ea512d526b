package matcher

import (
	"github.com/viant/symbolreach/search"
	"github.com/viant/symbolreach/symgraph"
)

// Class matches ClassDef definitions reachable under a set of definition
// roots. Grounded on class_query.rs:ClassSymbols.
type Class struct {
	classes map[string]symgraph.Fqdn
}

// NewClass walks roots collecting every ClassDef node whose symbol matches s.
func NewClass(g *symgraph.Graph, roots []symgraph.NodeHandle, s *search.Search) *Class {
	classes := make(map[string]symgraph.Fqdn)
	walkAll(g, roots, s, func(n symgraph.NodeHandle, t symgraph.SyntaxType) {
		if t != symgraph.ClassDef {
			return
		}
		fqdn, ok := symgraph.Reconstruct(g, n)
		if !ok {
			return
		}
		classes[fqdn.Key()] = fqdn
	})
	return &Class{classes: classes}
}

// MatchSymbol reports whether symbol names any known class, ignoring
// namespace — a bare class name always matches regardless of which
// namespace it was found in.
func (c *Class) MatchSymbol(symbol string) bool {
	for _, fqdn := range c.classes {
		class := ""
		if fqdn.Class != nil {
			class = *fqdn.Class
		}
		if class == symbol {
			return true
		}
	}
	return false
}

// MatchFqdn reports whether any known class shares fqdn's namespace and
// class, ignoring method/field.
func (c *Class) MatchFqdn(fqdn symgraph.Fqdn) bool {
	for _, known := range c.classes {
		if eqPtr(known.Namespace, fqdn.Namespace) && eqPtr(known.Class, fqdn.Class) {
			return true
		}
	}
	return false
}

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
