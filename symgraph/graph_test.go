package symgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternSymbol_Dedup(t *testing.T) {
	g := New()
	a := g.InternSymbol("Widget")
	b := g.InternSymbol("Widget")
	c := g.InternSymbol("Gadget")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "Widget", g.Symbol(a))

	h, ok := g.LookupSymbol("Gadget")
	require.True(t, ok)
	assert.Equal(t, c, h)

	_, ok = g.LookupSymbol("Unknown")
	assert.False(t, ok)
}

func TestInternString_Dedup(t *testing.T) {
	g := New()
	a := g.InternString("k1")
	b := g.InternString("k1")
	assert.Equal(t, a, b)
	assert.Equal(t, "k1", g.String(a))
}

func TestAddFile_Dedup(t *testing.T) {
	g := New()
	a := g.AddFile("widgets.go")
	b := g.AddFile("widgets.go")
	assert.Equal(t, a, b)
	assert.Equal(t, "widgets.go", g.FileName(a))

	h, ok := g.LookupFile("widgets.go")
	require.True(t, ok)
	assert.Equal(t, a, h)
}

func TestAddNode_OptionsAndFileMembership(t *testing.T) {
	g := New()
	file := g.AddFile("widgets.go")
	sym := g.InternSymbol("Widget")
	info := SourceInfo{SyntaxType: ClassDef, IsDefinition: true}

	n := g.AddNode(WithFile(file), WithSymbol(sym), WithSourceInfo(info))

	gotFile, ok := g.NodeFile(n)
	require.True(t, ok)
	assert.Equal(t, file, gotFile)

	gotSym, ok := g.NodeSymbol(n)
	require.True(t, ok)
	assert.Equal(t, sym, gotSym)

	gotInfo, ok := g.SourceInfo(n)
	require.True(t, ok)
	assert.Equal(t, info, gotInfo)

	assert.Equal(t, []NodeHandle{n}, g.NodesInFile(file))
}

func TestAddNode_WithoutOptionsHasNoFileOrSymbol(t *testing.T) {
	g := New()
	n := g.AddNode()

	_, ok := g.NodeFile(n)
	assert.False(t, ok)
	_, ok = g.NodeSymbol(n)
	assert.False(t, ok)
	_, ok = g.SourceInfo(n)
	assert.False(t, ok)
}

func TestNodesInFile_EmptyForUnknownFile(t *testing.T) {
	g := New()
	assert.Nil(t, g.NodesInFile(FileHandle(99)))
}

func TestSetRootAndRoot(t *testing.T) {
	g := New()
	n := g.AddNode()
	_, ok := g.Root()
	assert.False(t, ok)

	g.SetRoot(n)
	root, ok := g.Root()
	require.True(t, ok)
	assert.Equal(t, n, root)
	assert.True(t, g.IsRoot(n))
}

func TestAddEdge_OutgoingOrderPreserved(t *testing.T) {
	g := New()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()

	g.AddEdge(a, b, Structural)
	g.AddEdge(a, c, FQDNBack)

	edges := g.OutgoingEdges(a)
	require.Len(t, edges, 2)
	assert.Equal(t, Edge{Source: a, Sink: b, Precedence: Structural}, edges[0])
	assert.Equal(t, Edge{Source: a, Sink: c, Precedence: FQDNBack}, edges[1])
	assert.Empty(t, g.OutgoingEdges(b))
}

func TestSetSourceInfo_OverridesExisting(t *testing.T) {
	g := New()
	n := g.AddNode(WithSourceInfo(SourceInfo{SyntaxType: Name}))
	g.SetSourceInfo(n, SourceInfo{SyntaxType: ClassDef, IsDefinition: true})

	info, ok := g.SourceInfo(n)
	require.True(t, ok)
	assert.Equal(t, ClassDef, info.SyntaxType)
	assert.True(t, info.IsDefinition)
}

func TestNodes_ReturnsAllInHandleOrder(t *testing.T) {
	g := New()
	a := g.AddNode()
	b := g.AddNode()
	assert.Equal(t, []NodeHandle{a, b}, g.Nodes())
}

func TestFiles_ReturnsAllRegistered(t *testing.T) {
	g := New()
	a := g.AddFile("a.go")
	b := g.AddFile("b.go")
	assert.Equal(t, []FileHandle{a, b}, g.Files())
}

func TestFindDefinitionBySymbol(t *testing.T) {
	g := New()
	sym := g.InternSymbol("Widget")
	other := g.InternSymbol("Gadget")

	def := g.AddNode(WithSymbol(sym), WithSourceInfo(SourceInfo{SyntaxType: ClassDef, IsDefinition: true}))
	g.AddNode(WithSymbol(sym), WithSourceInfo(SourceInfo{SyntaxType: Name, IsDefinition: false}))
	g.AddNode(WithSymbol(other), WithSourceInfo(SourceInfo{SyntaxType: ClassDef, IsDefinition: true}))

	got := g.FindDefinitionBySymbol(sym)
	assert.Equal(t, []NodeHandle{def}, got)
}

func TestNodeCount(t *testing.T) {
	g := New()
	assert.Equal(t, 0, g.NodeCount())
	g.AddNode()
	g.AddNode()
	assert.Equal(t, 2, g.NodeCount())
}
