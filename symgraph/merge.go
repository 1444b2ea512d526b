package symgraph

// Merge copies every file, symbol, node and edge from frag into dst,
// remapping handles as needed (symbols are re-interned so that the same
// string shares one handle across fragments, per invariant 1). It is used by
// the persistence boundary to rehydrate a unified graph from per-file
// partial-path fragments (§4.I).
func Merge(dst *Graph, frag *Graph) {
	fileMap := make(map[FileHandle]FileHandle, len(frag.files))
	for i, f := range frag.files {
		fileMap[FileHandle(i)] = dst.AddFile(f.name)
	}

	symMap := make(map[SymbolHandle]SymbolHandle, len(frag.symbols))
	for i, s := range frag.symbols {
		symMap[SymbolHandle(i)] = dst.InternSymbol(s)
	}

	nodeMap := make(map[NodeHandle]NodeHandle, len(frag.nodes))
	for i, n := range frag.nodes {
		var opts []NodeOption
		if n.hasFile {
			opts = append(opts, WithFile(fileMap[n.file]))
		}
		if n.hasSym {
			opts = append(opts, WithSymbol(symMap[n.sym]))
		}
		if n.hasInfo {
			opts = append(opts, WithSourceInfo(n.info))
		}
		newHandle := dst.AddNode(opts...)
		if n.isRoot {
			dst.SetRoot(newHandle)
		}
		nodeMap[NodeHandle(i)] = newHandle
	}

	for i, edges := range frag.edges {
		src := nodeMap[NodeHandle(i)]
		for _, e := range edges {
			dst.AddEdge(src, nodeMap[e.Sink], e.Precedence)
		}
	}
}
