// Package matcher builds kind-specific reference matchers (class, field,
// method, namespace) by walking the structural spine under a set of
// definition-root nodes and reconstructing the FQDN of every node that both
// matches a compiled search pattern and carries a recognized SyntaxType.
package matcher

import (
	"sort"

	"github.com/viant/symbolreach/search"
	"github.com/viant/symbolreach/symgraph"
)

// Matcher answers whether a bare symbol or a reconstructed FQDN belongs to
// the set of definitions this matcher was built from.
type Matcher interface {
	MatchSymbol(symbol string) bool
	MatchFqdn(fqdn symgraph.Fqdn) bool
}

// walkAll visits every structural (precedence-0) descendant of roots whose
// own symbol matches s and which carries a known SyntaxType, calling visit
// for each one. Traversal never stops early — every match under every root
// is reported.
func walkAll(g *symgraph.Graph, roots []symgraph.NodeHandle, s *search.Search, visit func(n symgraph.NodeHandle, t symgraph.SyntaxType)) {
	for _, root := range roots {
		walkAllNode(g, root, s, visit)
	}
}

func walkAllNode(g *symgraph.Graph, n symgraph.NodeHandle, s *search.Search, visit func(symgraph.NodeHandle, symgraph.SyntaxType)) {
	children := matchingChildren(g, n, s, visit)
	sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })
	for _, c := range children {
		walkAllNode(g, c, s, visit)
	}
}

// walkFirst returns the first node under roots (in the same deterministic
// order as walkAll) whose SyntaxType satisfies accept, or false if none do.
func walkFirst(g *symgraph.Graph, roots []symgraph.NodeHandle, s *search.Search, accept func(symgraph.SyntaxType) bool) (symgraph.NodeHandle, bool) {
	for _, root := range roots {
		if n, ok := walkFirstNode(g, root, s, accept); ok {
			return n, true
		}
	}
	return 0, false
}

func walkFirstNode(g *symgraph.Graph, n symgraph.NodeHandle, s *search.Search, accept func(symgraph.SyntaxType) bool) (symgraph.NodeHandle, bool) {
	var found symgraph.NodeHandle
	var ok bool
	children := matchingChildren(g, n, s, func(child symgraph.NodeHandle, t symgraph.SyntaxType) {
		if ok || !accept(t) {
			return
		}
		found, ok = child, true
	})
	if ok {
		return found, true
	}

	sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })
	for _, c := range children {
		if n, ok := walkFirstNode(g, c, s, accept); ok {
			return n, true
		}
	}
	return 0, false
}

// matchingChildren follows every outgoing structural edge of n, invoking
// visit for each sink whose symbol matches s and which has source info, and
// returns the full child list (matching or not) for recursion.
func matchingChildren(g *symgraph.Graph, n symgraph.NodeHandle, s *search.Search, visit func(symgraph.NodeHandle, symgraph.SyntaxType)) []symgraph.NodeHandle {
	var children []symgraph.NodeHandle
	for _, e := range g.OutgoingEdges(n) {
		if e.Precedence == symgraph.FQDNBack {
			continue
		}
		children = append(children, e.Sink)

		symHandle, ok := g.NodeSymbol(e.Sink)
		if !ok {
			continue
		}
		if !s.MatchSymbol(g.Symbol(symHandle)) {
			continue
		}
		info, ok := g.SourceInfo(e.Sink)
		if !ok {
			continue
		}
		visit(e.Sink, info.SyntaxType)
	}
	return children
}
