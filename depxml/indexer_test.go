package depxml

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/symbolreach/symgraph"
)

const sampleDoc = `<?xml version="1.0"?>
<doc>
<assembly><name>System.Configuration</name></assembly>
<members>
<member name="N:System.Configuration"/>
<member name="T:System.Configuration.AppSettingsSection"/>
<member name="P:System.Configuration.AppSettingsSection.Settings"/>
<member name="M:System.Configuration.AppSettingsSection.#ctor"/>
<member name="M:System.Configuration.AppSettingsSection.GetSection(System.String)"/>
<member name="F:Console.Out"/>
<member name="garbage-with-no-colon"/>
</members>
</doc>`

func TestIndex_Sample(t *testing.T) {
	g := symgraph.New()
	file := g.AddFile("System.Configuration.xml")

	stats, err := Index(context.Background(), g, file, "System.Configuration.xml", strings.NewReader(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, 6, stats.MembersSeen)
	assert.Equal(t, 1, stats.MembersSkipped)
	assert.True(t, stats.NodesCreated > 0)
	assert.True(t, stats.NamespacesLinked >= 2)

	var compUnits, classes, methods, fields, namespaces int
	for _, n := range g.NodesInFile(file) {
		info, ok := g.SourceInfo(n)
		require.True(t, ok)
		switch info.SyntaxType {
		case symgraph.CompUnit:
			compUnits++
		case symgraph.ClassDef:
			classes++
		case symgraph.MethodName:
			methods++
		case symgraph.FieldName:
			fields++
		case symgraph.NamespaceDeclaration:
			namespaces++
		}
	}
	assert.Equal(t, 1, compUnits)
	assert.Equal(t, 2, classes) // AppSettingsSection, Console
	assert.Equal(t, 2, methods) // constructor's method symbol is the class name, GetSection keeps its own
	assert.Equal(t, 2, fields)  // Settings, Out
	assert.Equal(t, 2, namespaces)
}

func TestIndex_EmptyDocument(t *testing.T) {
	g := symgraph.New()
	file := g.AddFile("empty.xml")
	stats, err := Index(context.Background(), g, file, "empty.xml", strings.NewReader(`<doc></doc>`))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.MembersSeen)
	// Still creates the CompUnit node, with no namespaces to link.
	assert.Equal(t, 1, stats.NodesCreated)
	assert.Equal(t, 0, stats.NamespacesLinked)
}

func TestIndex_MalformedXML(t *testing.T) {
	g := symgraph.New()
	file := g.AddFile("bad.xml")
	_, err := Index(context.Background(), g, file, "bad.xml", strings.NewReader(`<doc><member name="N:X">`))
	assert.ErrorIs(t, err, ErrParse)
}

func TestIndex_Cancelled(t *testing.T) {
	g := symgraph.New()
	file := g.AddFile("cancelled.xml")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Index(ctx, g, file, "cancelled.xml", strings.NewReader(sampleDoc))
	assert.ErrorIs(t, err, ErrCancelled)
}
