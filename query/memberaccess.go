package query

import (
	"strings"

	"github.com/viant/symbolreach/symgraph"
)

// resolveMemberAccess resolves a "accessor.accessed" reference symbol to the
// FQDN of whatever "accessed" names on "accessor". Only works on
// member-access-shaped symbols (exactly two dotted segments); anything else
// reports no match. Grounded on query.rs:get_type_with_symbol.
func resolveMemberAccess(g *symgraph.Graph, refNode symgraph.NodeHandle, symbol string) (symgraph.Fqdn, bool) {
	parts := strings.SplitN(symbol, ".", 3)
	if len(parts) != 2 {
		return symgraph.Fqdn{}, false
	}
	accessor, accessed := parts[0], parts[1]

	accessorSym, ok := g.LookupSymbol(accessor)
	if !ok {
		return symgraph.Fqdn{}, false
	}

	refFile, hasRefFile := g.NodeFile(refNode)

	for _, def := range g.FindDefinitionBySymbol(accessorSym) {
		info, ok := g.SourceInfo(def)
		if !ok {
			continue
		}
		var fqdn symgraph.Fqdn
		var resolved bool
		switch info.SyntaxType {
		case symgraph.ClassDef:
			fqdn, resolved = resolveViaClassMember(g, def, accessed)
		case symgraph.FieldName, symgraph.MethodName:
			fqdn, resolved = symgraph.Reconstruct(g, def)
		case symgraph.LocalVar:
			if !hasRefFile {
				continue
			}
			fqdn, resolved = resolveLocalVarMember(g, def, accessed, refFile)
		default:
			continue
		}
		if resolved {
			return fqdn, true
		}
	}
	return symgraph.Fqdn{}, false
}

// resolveViaClassMember finds def's structural child named accessed and
// returns its reconstructed FQDN.
func resolveViaClassMember(g *symgraph.Graph, def symgraph.NodeHandle, accessed string) (symgraph.Fqdn, bool) {
	child, ok := structuralChildNamed(g, def, accessed)
	if !ok {
		return symgraph.Fqdn{}, false
	}
	return symgraph.Reconstruct(g, child)
}

// resolveLocalVarMember resolves the member access through a local variable:
// the variable must be defined in the same file as the reference, its first
// structural reference child gives the declared type's symbol, and the
// first node anywhere sharing that symbol with a structural child named
// accessed gives the final FQDN.
func resolveLocalVarMember(g *symgraph.Graph, def symgraph.NodeHandle, accessed string, refFile symgraph.FileHandle) (symgraph.Fqdn, bool) {
	defFile, ok := g.NodeFile(def)
	if !ok || defFile != refFile {
		return symgraph.Fqdn{}, false
	}

	var typeRefSym symgraph.SymbolHandle
	var found bool
	for _, e := range g.OutgoingEdges(def) {
		if e.Precedence == symgraph.FQDNBack {
			continue
		}
		info, ok := g.SourceInfo(e.Sink)
		if !ok || !info.IsReference {
			continue
		}
		sym, ok := g.NodeSymbol(e.Sink)
		if !ok {
			continue
		}
		typeRefSym, found = sym, true
		break
	}
	if !found {
		return symgraph.Fqdn{}, false
	}

	for _, n := range g.Nodes() {
		sym, ok := g.NodeSymbol(n)
		if !ok || sym != typeRefSym {
			continue
		}
		child, ok := structuralChildNamed(g, n, accessed)
		if !ok {
			continue
		}
		return symgraph.Reconstruct(g, child)
	}
	return symgraph.Fqdn{}, false
}

func structuralChildNamed(g *symgraph.Graph, n symgraph.NodeHandle, symbol string) (symgraph.NodeHandle, bool) {
	for _, e := range g.OutgoingEdges(n) {
		if e.Precedence == symgraph.FQDNBack {
			continue
		}
		sym, ok := g.NodeSymbol(e.Sink)
		if !ok {
			continue
		}
		if g.Symbol(sym) == symbol {
			return e.Sink, true
		}
	}
	return 0, false
}
