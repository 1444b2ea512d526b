package query

import (
	"github.com/viant/symbolreach/matcher"
	"github.com/viant/symbolreach/symgraph"
)

// traverse walks every structural (precedence-0) descendant of node,
// appending a Result for each reference/definition matching m. Reference
// nodes are resolved through member-access before being checked against
// MatchFqdn; plain nodes are checked against MatchSymbol directly. Grounded
// on query.rs:Querier::traverse_node_search.
func traverse(g *symgraph.Graph, node symgraph.NodeHandle, m matcher.Matcher, fileURI string, out *[]Result) {
	var children []symgraph.NodeHandle
	for _, e := range g.OutgoingEdges(node) {
		if e.Precedence == symgraph.FQDNBack {
			continue
		}
		children = append(children, e.Sink)

		symHandle, ok := g.NodeSymbol(e.Sink)
		if !ok {
			continue
		}
		symbol := g.Symbol(symHandle)

		info, ok := g.SourceInfo(e.Sink)
		if !ok {
			continue
		}

		if info.IsReference {
			fqdn, ok := resolveMemberAccess(g, e.Sink, symbol)
			if !ok || !m.MatchFqdn(fqdn) {
				continue
			}
		} else if !m.MatchSymbol(symbol) {
			continue
		}

		if info.Span.Degenerate() {
			continue
		}

		*out = append(*out, Result{
			FileURI:      fileURI,
			LineNumber:   info.Span.Start.Line,
			CodeLocation: info.Span,
			SyntaxType:   info.SyntaxType.String(),
			Symbol:       symbol,
		})
	}

	for _, c := range children {
		traverse(g, c, m, fileURI, out)
	}
}
