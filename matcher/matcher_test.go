package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/symbolreach/search"
	"github.com/viant/symbolreach/symgraph"
)

// buildSample reproduces the namespace/class/method/field spine used across
// the original analyzer's own matcher tests: a root node containing a
// System.Configuration namespace with a ConfigurationManager class, which in
// turn declares a GetSection method and an AppSettings field.
func buildSample(t *testing.T) (*symgraph.Graph, []symgraph.NodeHandle) {
	t.Helper()
	g := symgraph.New()
	file := g.AddFile("test.cs")

	root := g.AddNode(symgraph.WithFile(file))

	ns := g.AddNode(symgraph.WithFile(file), symgraph.WithSymbol(g.InternSymbol("System.Configuration")),
		symgraph.WithSourceInfo(symgraph.SourceInfo{SyntaxType: symgraph.NamespaceDeclaration, IsDefinition: true}))

	class := g.AddNode(symgraph.WithFile(file), symgraph.WithSymbol(g.InternSymbol("ConfigurationManager")),
		symgraph.WithSourceInfo(symgraph.SourceInfo{SyntaxType: symgraph.ClassDef, IsDefinition: true}))

	method := g.AddNode(symgraph.WithFile(file), symgraph.WithSymbol(g.InternSymbol("GetSection")),
		symgraph.WithSourceInfo(symgraph.SourceInfo{SyntaxType: symgraph.MethodName, IsDefinition: true}))

	field := g.AddNode(symgraph.WithFile(file), symgraph.WithSymbol(g.InternSymbol("AppSettings")),
		symgraph.WithSourceInfo(symgraph.SourceInfo{SyntaxType: symgraph.FieldName, IsDefinition: true}))

	g.AddEdge(root, ns, symgraph.Structural)
	g.AddEdge(ns, class, symgraph.Structural)
	g.AddEdge(class, ns, symgraph.FQDNBack)
	g.AddEdge(class, method, symgraph.Structural)
	g.AddEdge(method, class, symgraph.FQDNBack)
	g.AddEdge(class, field, symgraph.Structural)
	g.AddEdge(field, class, symgraph.FQDNBack)

	return g, []symgraph.NodeHandle{root}
}

func wildcard(t *testing.T) *search.Search {
	t.Helper()
	s, err := search.Compile("*")
	require.NoError(t, err)
	return s
}

func TestNamespace_New(t *testing.T) {
	g, roots := buildSample(t)
	ns, err := NewNamespace(g, roots, wildcard(t))
	require.NoError(t, err)
	require.NotNil(t, ns.namespace.Namespace)
	assert.Equal(t, "System.Configuration", *ns.namespace.Namespace)
}

func TestNamespace_MatchSymbol(t *testing.T) {
	g, roots := buildSample(t)
	ns, err := NewNamespace(g, roots, wildcard(t))
	require.NoError(t, err)

	assert.True(t, ns.MatchSymbol("System.Configuration"))
	assert.True(t, ns.MatchSymbol("ConfigurationManager"))
	assert.True(t, ns.MatchSymbol("ConfigurationManager.GetSection"))
	assert.True(t, ns.MatchSymbol("ConfigurationManager.AppSettings"))
	assert.False(t, ns.MatchSymbol("NoSuchThing"))
}

func TestNamespace_NotFound(t *testing.T) {
	g := symgraph.New()
	root := g.AddNode()
	_, err := NewNamespace(g, []symgraph.NodeHandle{root}, wildcard(t))
	assert.ErrorIs(t, err, ErrNamespaceNotFound)
}

func TestClass_MatchSymbolIgnoresNamespace(t *testing.T) {
	g, roots := buildSample(t)
	c := NewClass(g, roots, wildcard(t))
	assert.True(t, c.MatchSymbol("ConfigurationManager"))
	assert.False(t, c.MatchSymbol("System.Configuration"))
}

func TestField_MatchSymbolIsClassBlind(t *testing.T) {
	g, roots := buildSample(t)
	f := NewField(g, roots, wildcard(t))
	// The loose match only compares the trailing segment against the
	// field's Field component, so a nonsense receiver still matches, while a
	// method name never does.
	assert.True(t, f.MatchSymbol("Whatever.AppSettings"))
	assert.False(t, f.MatchSymbol("ConfigurationManager.GetSection"))
	assert.False(t, f.MatchSymbol("onepart"))
}

func TestMethod_MatchSymbolRequiresBothParts(t *testing.T) {
	g, roots := buildSample(t)
	m := NewMethod(g, roots, wildcard(t))
	assert.True(t, m.MatchSymbol("ConfigurationManager.GetSection"))
	assert.False(t, m.MatchSymbol("Other.GetSection"))
	assert.False(t, m.MatchSymbol("ConfigurationManager"))
}

func TestMethod_MatchFqdn(t *testing.T) {
	g, roots := buildSample(t)
	m := NewMethod(g, roots, wildcard(t))

	for _, n := range g.Nodes() {
		info, ok := g.SourceInfo(n)
		if !ok || info.SyntaxType != symgraph.MethodName {
			continue
		}
		f, ok := symgraph.Reconstruct(g, n)
		require.True(t, ok)
		assert.True(t, m.MatchFqdn(f))
	}
}
