package query

import (
	"github.com/viant/symbolreach/search"
	"github.com/viant/symbolreach/symgraph"
)

// StartingNodes is the result of one full-graph scan keyed by a compiled
// search pattern: every namespace-definition node the pattern reaches
// (definition roots for the matcher pass) plus every file that references
// the pattern (via an import or the namespace declaration itself), each
// mapped to its CompUnit node.
type StartingNodes struct {
	DefinitionRoots    []symgraph.NodeHandle
	ReferencedFiles    map[symgraph.FileHandle]bool
	FileToCompUnitNode map[symgraph.FileHandle]symgraph.NodeHandle
}

// GetStartingNodes scans every node in g exactly once. A node contributes
// only if it carries a file, a symbol and SourceInfo; its SyntaxType then
// decides the role: CompUnit nodes seed the file->CompUnit map, Import nodes
// mark their file as referenced when the import partially matches s, and
// NamespaceDeclaration nodes become definition roots (and mark their file
// referenced) when s matches the namespace.
func GetStartingNodes(g *symgraph.Graph, s *search.Search) StartingNodes {
	out := StartingNodes{
		ReferencedFiles:    make(map[symgraph.FileHandle]bool),
		FileToCompUnitNode: make(map[symgraph.FileHandle]symgraph.NodeHandle),
	}

	for _, n := range g.Nodes() {
		file, ok := g.NodeFile(n)
		if !ok {
			continue
		}
		symHandle, ok := g.NodeSymbol(n)
		if !ok {
			continue
		}
		info, ok := g.SourceInfo(n)
		if !ok {
			continue
		}
		symbol := g.Symbol(symHandle)

		switch info.SyntaxType {
		case symgraph.CompUnit:
			out.FileToCompUnitNode[file] = n
		case symgraph.Import:
			if s.PartialNamespace(symbol) {
				out.ReferencedFiles[file] = true
			}
		case symgraph.NamespaceDeclaration:
			if s.MatchNamespace(symbol) {
				out.DefinitionRoots = append(out.DefinitionRoots, n)
				out.ReferencedFiles[file] = true
			}
		}
	}

	return out
}
