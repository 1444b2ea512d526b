package symgraph

// Reconstruct walks the unique outgoing precedence-10 edge from n, assembling
// an Fqdn by appending each node's symbol to the field matching its
// SyntaxType (dot-joined if that field is already set). A node with no
// precedence-10 edge is a spine root: its own kind/symbol seeds the Fqdn, or
// reconstruction fails (false) if its kind isn't one of the four
// hierarchical kinds ("return None when encountered as terminal", §4.B).
//
// When a node does have a precedence-10 edge, reconstruction recurses into
// the parent first. If the parent's reconstruction failed, this node
// "contributes nothing": it returns a blank Fqdn rather than propagating the
// failure further — this is the exact behavior of
// original_source/src/c_sharp_graph/query.rs:get_fqdn, preserved here per
// spec.md's instruction to keep current observable behavior rather than
// guess at the "cleaner" alternative. If the parent succeeded but this node's
// own kind isn't hierarchical, reconstruction fails at this level (the
// quirk propagates exactly one level up, where it is absorbed as above).
//
// Termination relies on invariant 3 (container/child precedence-0/10
// pairing) plus the absence of cycles in the precedence-10 subgraph; a cycle
// here is a producer bug, not something this function guards against.
func Reconstruct(g *Graph, n NodeHandle) (Fqdn, bool) {
	info, ok := g.SourceInfo(n)
	if !ok {
		return Fqdn{}, false
	}
	symHandle, ok := g.NodeSymbol(n)
	if !ok {
		return Fqdn{}, false
	}
	symbol := g.Symbol(symHandle)

	next, hasNext := fqdnBackEdge(g, n)
	if !hasNext {
		return seedFqdn(info.SyntaxType, symbol)
	}

	parent, parentOK := Reconstruct(g, next)
	if !parentOK {
		return Fqdn{}, true
	}
	return appendFqdn(parent, info.SyntaxType, symbol)
}

func fqdnBackEdge(g *Graph, n NodeHandle) (NodeHandle, bool) {
	for _, e := range g.OutgoingEdges(n) {
		if e.Precedence == FQDNBack {
			return e.Sink, true
		}
	}
	return 0, false
}

func seedFqdn(t SyntaxType, symbol string) (Fqdn, bool) {
	switch t {
	case NamespaceDeclaration:
		return Fqdn{Namespace: strPtr(symbol)}, true
	case ClassDef:
		return Fqdn{Class: strPtr(symbol)}, true
	case MethodName:
		return Fqdn{Method: strPtr(symbol)}, true
	case FieldName:
		return Fqdn{Field: strPtr(symbol)}, true
	default:
		return Fqdn{}, false
	}
}

func appendFqdn(base Fqdn, t SyntaxType, symbol string) (Fqdn, bool) {
	switch t {
	case NamespaceDeclaration:
		base.Namespace = appendDotted(base.Namespace, symbol)
	case ClassDef:
		base.Class = appendDotted(base.Class, symbol)
	case MethodName:
		base.Method = appendDotted(base.Method, symbol)
	case FieldName:
		base.Field = appendDotted(base.Field, symbol)
	default:
		return Fqdn{}, false
	}
	return base, true
}

func appendDotted(existing *string, symbol string) *string {
	if existing == nil {
		return strPtr(symbol)
	}
	return strPtr(*existing + "." + symbol)
}
