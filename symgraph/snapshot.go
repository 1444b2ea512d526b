package symgraph

// Snapshot is the serializable form of a Graph, used by the persistence
// boundary to store and rehydrate per-file partial-path fragments (§4.I).
// Field names are chosen for stable JSON encoding across versions.
type Snapshot struct {
	Files   []string       `json:"files"`
	Symbols []string       `json:"symbols"`
	Nodes   []NodeSnapshot `json:"nodes"`
}

// NodeSnapshot is the serializable form of one node, including its outgoing
// edges (indices into the owning Snapshot's Nodes slice).
type NodeSnapshot struct {
	HasFile bool       `json:"hasFile,omitempty"`
	File    int        `json:"file,omitempty"`
	HasSym  bool       `json:"hasSym,omitempty"`
	Sym     int        `json:"sym,omitempty"`
	HasInfo bool       `json:"hasInfo,omitempty"`
	Info    SourceInfo `json:"info,omitempty"`
	IsRoot  bool       `json:"isRoot,omitempty"`
	Edges   []EdgeSnapshot `json:"edges,omitempty"`
}

// EdgeSnapshot is the serializable form of one outgoing edge.
type EdgeSnapshot struct {
	Sink       int        `json:"sink"`
	Precedence Precedence `json:"precedence"`
}

// Export renders g into a Snapshot suitable for JSON encoding.
func (g *Graph) Export() Snapshot {
	snap := Snapshot{
		Files:   make([]string, len(g.files)),
		Symbols: make([]string, len(g.symbols)),
		Nodes:   make([]NodeSnapshot, len(g.nodes)),
	}
	for i, f := range g.files {
		snap.Files[i] = f.name
	}
	copy(snap.Symbols, g.symbols)
	for i, n := range g.nodes {
		ns := NodeSnapshot{
			HasFile: n.hasFile,
			File:    int(n.file),
			HasSym:  n.hasSym,
			Sym:     int(n.sym),
			HasInfo: n.hasInfo,
			Info:    n.info,
			IsRoot:  n.isRoot,
		}
		for _, e := range g.edges[i] {
			ns.Edges = append(ns.Edges, EdgeSnapshot{Sink: int(e.Sink), Precedence: e.Precedence})
		}
		snap.Nodes[i] = ns
	}
	return snap
}

// Import rebuilds a fresh Graph from a Snapshot. Node order and handle
// values are preserved exactly, so edges (stored as plain indices) resolve
// without remapping.
func Import(snap Snapshot) *Graph {
	g := New()
	for _, f := range snap.Files {
		g.AddFile(f)
	}
	for _, s := range snap.Symbols {
		g.InternSymbol(s)
	}
	for _, n := range snap.Nodes {
		var opts []NodeOption
		if n.HasFile {
			opts = append(opts, WithFile(FileHandle(n.File)))
		}
		if n.HasSym {
			opts = append(opts, WithSymbol(SymbolHandle(n.Sym)))
		}
		if n.HasInfo {
			opts = append(opts, WithSourceInfo(n.Info))
		}
		h := g.AddNode(opts...)
		if n.IsRoot {
			g.SetRoot(h)
		}
	}
	for i, n := range snap.Nodes {
		for _, e := range n.Edges {
			g.AddEdge(NodeHandle(i), NodeHandle(e.Sink), e.Precedence)
		}
	}
	return g
}
