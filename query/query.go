package query

import (
	"github.com/viant/symbolreach/search"
	"github.com/viant/symbolreach/symgraph"
)

// SourceFilter restricts a Query to files carrying a particular marker
// symbol wired to their CompUnit node — the mechanism the ingest side uses
// to distinguish a project's own source files from third-party/dependency
// files indexed into the same graph. A zero-value SourceFilter (Enabled
// false) disables the gate.
type SourceFilter struct {
	Symbol  symgraph.SymbolHandle
	Enabled bool
}

func (f SourceFilter) admits(g *symgraph.Graph, file symgraph.FileHandle, compUnit symgraph.NodeHandle) bool {
	if !f.Enabled {
		return true
	}
	for _, n := range g.NodesInFile(file) {
		sym, ok := g.NodeSymbol(n)
		if !ok || sym != f.Symbol {
			continue
		}
		for _, e := range g.OutgoingEdges(n) {
			if e.Sink == compUnit {
				return true
			}
		}
	}
	return false
}

// Query runs a compiled pattern against g: it discovers starting nodes,
// builds the kind-specific matcher, then traverses every referenced file's
// CompUnit (subject to filter), returning deduplicated, totally-ordered
// results. Grounded on query.rs:Querier::query / QueryType.
func Query(g *symgraph.Graph, kind Kind, pattern string, filter SourceFilter) ([]Result, error) {
	s, err := search.Compile(pattern)
	if err != nil {
		return nil, err
	}

	starting := GetStartingNodes(g, s)

	m, err := newMatcher(kind, g, starting.DefinitionRoots, s)
	if err != nil {
		return nil, err
	}

	var results []Result
	for file := range starting.ReferencedFiles {
		compUnit, ok := starting.FileToCompUnitNode[file]
		if !ok {
			continue
		}
		if !filter.admits(g, file, compUnit) {
			continue
		}
		traverse(g, compUnit, m, g.FileName(file), &results)
	}

	return Dedup(results), nil
}
