package matcher

import (
	"strings"

	"github.com/viant/symbolreach/search"
	"github.com/viant/symbolreach/symgraph"
)

// Method matches MethodName definitions reachable under a set of definition
// roots. The original analyzer's method_query.rs was not recovered, but
// field_query.rs's own doc comment ("Symbol here must be of
// <thing>.<method_name>") describes this matcher's contract; class/field's
// class-and-method equality pairing is reproduced here without the dead-code
// class-blindness bug field_query.rs carries.
type Method struct {
	methods map[string]symgraph.Fqdn
}

// NewMethod walks roots collecting every MethodName node whose symbol
// matches s.
func NewMethod(g *symgraph.Graph, roots []symgraph.NodeHandle, s *search.Search) *Method {
	methods := make(map[string]symgraph.Fqdn)
	walkAll(g, roots, s, func(n symgraph.NodeHandle, t symgraph.SyntaxType) {
		if t != symgraph.MethodName {
			return
		}
		fqdn, ok := symgraph.Reconstruct(g, n)
		if !ok {
			return
		}
		methods[fqdn.Key()] = fqdn
	})
	return &Method{methods: methods}
}

// MatchSymbol expects a "Class.method" symbol and requires both segments to
// match a single known method's class and method components.
func (m *Method) MatchSymbol(symbol string) bool {
	parts := strings.Split(symbol, ".")
	if len(parts) != 2 {
		return false
	}
	classPart, methodPart := parts[0], parts[1]
	for _, fqdn := range m.methods {
		class, method := "", ""
		if fqdn.Class != nil {
			class = *fqdn.Class
		}
		if fqdn.Method != nil {
			method = *fqdn.Method
		}
		if class == classPart && method == methodPart {
			return true
		}
	}
	return false
}

// MatchFqdn reports whether fqdn exactly matches a known method's FQDN.
func (m *Method) MatchFqdn(fqdn symgraph.Fqdn) bool {
	_, ok := m.methods[fqdn.Key()]
	return ok
}
