package symgraph

import (
	"github.com/RoaringBitmap/roaring"
)

// fileRecord holds the metadata for one File entity.
type fileRecord struct {
	name string
}

// nodeRecord is the internal storage for one Node. File and Symbol are
// optional (zero value plus a presence flag), mirroring the spec's "a node
// may belong to zero or one file" / "may carry an optional interned symbol".
type nodeRecord struct {
	hasFile  bool
	file     FileHandle
	hasSym   bool
	sym      SymbolHandle
	hasInfo  bool
	info     SourceInfo
	isRoot   bool
}

// Graph is an append-only, handle-indexed arena of nodes, edges, symbols,
// strings and files. It is built by a single owner and, once published,
// shared read-only by concurrent readers (§9 design notes).
type Graph struct {
	nodes []nodeRecord
	edges [][]Edge // edges[i] = outgoing edges of NodeHandle(i)

	symbols      []string
	symbolIndex  map[string]SymbolHandle

	strings      []string
	stringIndex  map[string]StringHandle

	files     []fileRecord
	fileIndex map[string]FileHandle

	// fileNodes maps a FileHandle to the bitmap of NodeHandles bound to it.
	// This is purely a file-membership index; the substrate still offers no
	// symbol->nodes index, per §4.A.
	fileNodes map[FileHandle]*roaring.Bitmap

	rootNode NodeHandle
	hasRoot  bool
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		symbolIndex: make(map[string]SymbolHandle),
		stringIndex: make(map[string]StringHandle),
		fileIndex:   make(map[string]FileHandle),
		fileNodes:   make(map[FileHandle]*roaring.Bitmap),
	}
}

// InternSymbol returns the unique handle for s, creating it if necessary.
// intern(s1) == intern(s2) iff s1 == s2 (invariant 1).
func (g *Graph) InternSymbol(s string) SymbolHandle {
	if h, ok := g.symbolIndex[s]; ok {
		return h
	}
	h := SymbolHandle(len(g.symbols))
	g.symbols = append(g.symbols, s)
	g.symbolIndex[s] = h
	return h
}

// Symbol returns the interned string for h.
func (g *Graph) Symbol(h SymbolHandle) string {
	return g.symbols[h]
}

// LookupSymbol returns the handle for s if it has already been interned.
func (g *Graph) LookupSymbol(s string) (SymbolHandle, bool) {
	h, ok := g.symbolIndex[s]
	return h, ok
}

// InternString interns a non-symbol string (debug-info keys/values).
func (g *Graph) InternString(s string) StringHandle {
	if h, ok := g.stringIndex[s]; ok {
		return h
	}
	h := StringHandle(len(g.strings))
	g.strings = append(g.strings, s)
	g.stringIndex[s] = h
	return h
}

// String returns the interned string for h.
func (g *Graph) String(h StringHandle) string {
	return g.strings[h]
}

// AddFile registers a file by name, returning its handle. Calling AddFile
// twice with the same name returns the same handle.
func (g *Graph) AddFile(name string) FileHandle {
	if h, ok := g.fileIndex[name]; ok {
		return h
	}
	h := FileHandle(len(g.files))
	g.files = append(g.files, fileRecord{name: name})
	g.fileIndex[name] = h
	g.fileNodes[h] = roaring.New()
	return h
}

// FileName returns the filesystem name bound to h.
func (g *Graph) FileName(h FileHandle) string {
	return g.files[h].name
}

// LookupFile returns the handle for name if the file has already been added.
func (g *Graph) LookupFile(name string) (FileHandle, bool) {
	h, ok := g.fileIndex[name]
	return h, ok
}

// NodeOption configures an added node. Node construction is append-only.
type NodeOption func(*nodeRecord)

// WithFile binds the node to a file.
func WithFile(f FileHandle) NodeOption {
	return func(n *nodeRecord) {
		n.hasFile = true
		n.file = f
	}
}

// WithSymbol binds the node to an interned symbol.
func WithSymbol(s SymbolHandle) NodeOption {
	return func(n *nodeRecord) {
		n.hasSym = true
		n.sym = s
	}
}

// WithSourceInfo attaches source metadata to the node.
func WithSourceInfo(info SourceInfo) NodeOption {
	return func(n *nodeRecord) {
		n.hasInfo = true
		n.info = info
	}
}

// AddNode appends a new node and returns its handle.
func (g *Graph) AddNode(opts ...NodeOption) NodeHandle {
	var rec nodeRecord
	for _, opt := range opts {
		opt(&rec)
	}
	h := NodeHandle(len(g.nodes))
	g.nodes = append(g.nodes, rec)
	g.edges = append(g.edges, nil)
	if rec.hasFile {
		g.fileNodes[rec.file].Add(uint32(h))
	}
	return h
}

// SetRoot marks n as the single graph root (invariant: at most one root per
// graph; callers are responsible for only calling this once).
func (g *Graph) SetRoot(n NodeHandle) {
	g.nodes[n].isRoot = true
	g.rootNode = n
	g.hasRoot = true
}

// Root returns the graph root, if one has been set.
func (g *Graph) Root() (NodeHandle, bool) {
	return g.rootNode, g.hasRoot
}

// NodeFile returns the file bound to n, if any.
func (g *Graph) NodeFile(n NodeHandle) (FileHandle, bool) {
	r := g.nodes[n]
	return r.file, r.hasFile
}

// NodeSymbol returns the symbol bound to n, if any.
func (g *Graph) NodeSymbol(n NodeHandle) (SymbolHandle, bool) {
	r := g.nodes[n]
	return r.sym, r.hasSym
}

// IsRoot reports whether n is the graph root.
func (g *Graph) IsRoot(n NodeHandle) bool {
	return g.nodes[n].isRoot
}

// SourceInfo returns the optional source metadata for n. A node with no
// SourceInfo is treated as a purely structural bridge.
func (g *Graph) SourceInfo(n NodeHandle) (SourceInfo, bool) {
	r := g.nodes[n]
	return r.info, r.hasInfo
}

// SetSourceInfo attaches or replaces source metadata for n.
func (g *Graph) SetSourceInfo(n NodeHandle, info SourceInfo) {
	g.nodes[n].hasInfo = true
	g.nodes[n].info = info
}

// AddEdge appends a directed edge from source to sink with the given
// precedence.
func (g *Graph) AddEdge(source, sink NodeHandle, precedence Precedence) {
	g.edges[source] = append(g.edges[source], Edge{Source: source, Sink: sink, Precedence: precedence})
}

// OutgoingEdges returns the edges sourced at n, in insertion order.
func (g *Graph) OutgoingEdges(n NodeHandle) []Edge {
	return g.edges[n]
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Nodes returns every node handle in the graph, in handle order. This is the
// only way to ask "which nodes carry symbol X" — the substrate deliberately
// offers no symbol->nodes index (§4.A).
func (g *Graph) Nodes() []NodeHandle {
	out := make([]NodeHandle, len(g.nodes))
	for i := range out {
		out[i] = NodeHandle(i)
	}
	return out
}

// NodesInFile returns every node bound to file, using the roaring-bitmap
// membership index rather than a linear scan.
func (g *Graph) NodesInFile(file FileHandle) []NodeHandle {
	bm, ok := g.fileNodes[file]
	if !ok {
		return nil
	}
	it := bm.Iterator()
	out := make([]NodeHandle, 0, bm.GetCardinality())
	for it.HasNext() {
		out = append(out, NodeHandle(it.Next()))
	}
	return out
}

// Files returns every file handle known to the graph.
func (g *Graph) Files() []FileHandle {
	out := make([]FileHandle, len(g.files))
	for i := range out {
		out[i] = FileHandle(i)
	}
	return out
}

// FindDefinitionBySymbol returns every node whose bound symbol equals sym and
// which is marked as a definition in its SourceInfo. Linear scan, per §4.A.
func (g *Graph) FindDefinitionBySymbol(sym SymbolHandle) []NodeHandle {
	var out []NodeHandle
	for i, n := range g.nodes {
		if !n.hasSym || n.sym != sym {
			continue
		}
		if !n.hasInfo || !n.info.IsDefinition {
			continue
		}
		out = append(out, NodeHandle(i))
	}
	return out
}
