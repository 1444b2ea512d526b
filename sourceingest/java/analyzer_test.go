package java

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/symbolreach/symgraph"
)

const sampleSource = `package com.example.widgets;

class Widget {
    String name;

    void rename(String next) {
        this.name = next;
    }

    Widget() {
    }
}
`

func TestAnalyzer_Extensions(t *testing.T) {
	assert.Equal(t, []string{"java"}, New().Extensions())
}

func TestAnalyzer_Analyze(t *testing.T) {
	g := symgraph.New()
	file := g.AddFile("Widget.java")

	require.NoError(t, New().Analyze(context.Background(), g, file, "Widget.java", []byte(sampleSource)))

	var namespaces, classes, methods, fields, compUnits int
	for _, n := range g.NodesInFile(file) {
		info, ok := g.SourceInfo(n)
		require.True(t, ok)
		switch info.SyntaxType {
		case symgraph.NamespaceDeclaration:
			namespaces++
		case symgraph.ClassDef:
			classes++
		case symgraph.MethodName:
			methods++
		case symgraph.FieldName:
			fields++
		case symgraph.CompUnit:
			compUnits++
		}
	}

	assert.Equal(t, 1, namespaces)
	assert.Equal(t, 1, classes) // Widget
	assert.Equal(t, 2, methods) // rename, Widget (constructor)
	assert.Equal(t, 1, fields)  // name
	assert.Equal(t, 1, compUnits)
}

func TestAnalyzer_FqdnOnMethod(t *testing.T) {
	g := symgraph.New()
	file := g.AddFile("Widget.java")
	require.NoError(t, New().Analyze(context.Background(), g, file, "Widget.java", []byte(sampleSource)))

	var found bool
	for _, n := range g.NodesInFile(file) {
		info, ok := g.SourceInfo(n)
		if !ok || info.SyntaxType != symgraph.MethodName {
			continue
		}
		sym, _ := g.NodeSymbol(n)
		if g.Symbol(sym) != "rename" {
			continue
		}
		fqdn, ok := symgraph.Reconstruct(g, n)
		require.True(t, ok)
		require.NotNil(t, fqdn.Class)
		assert.Equal(t, "Widget", *fqdn.Class)
		require.NotNil(t, fqdn.Namespace)
		assert.Equal(t, "com.example.widgets", *fqdn.Namespace)
		found = true
	}
	assert.True(t, found)
}

const methodInvocationSource = `package com.example.widgets;

class Caller {
    void invoke(Helper helper) {
        helper.run();
    }
}
`

func TestAnalyzer_MethodInvocationEmitsSingleReference(t *testing.T) {
	g := symgraph.New()
	file := g.AddFile("Caller.java")
	require.NoError(t, New().Analyze(context.Background(), g, file, "Caller.java", []byte(methodInvocationSource)))

	var refs int
	for _, n := range g.NodesInFile(file) {
		info, ok := g.SourceInfo(n)
		if ok && info.SyntaxType == symgraph.Name {
			refs++
		}
	}
	assert.Equal(t, 1, refs)
}

const importSource = `package com.example.widgets;

import java.util.List;
import java.util.*;

class Widget {
}
`

func TestAnalyzer_ImportNodes(t *testing.T) {
	g := symgraph.New()
	file := g.AddFile("Widget.java")
	require.NoError(t, New().Analyze(context.Background(), g, file, "Widget.java", []byte(importSource)))

	var imports []string
	for _, n := range g.NodesInFile(file) {
		info, ok := g.SourceInfo(n)
		if !ok || info.SyntaxType != symgraph.Import {
			continue
		}
		sym, ok := g.NodeSymbol(n)
		require.True(t, ok)
		imports = append(imports, g.Symbol(sym))
	}
	assert.ElementsMatch(t, []string{"java.util.List", "java.util.*"}, imports)
}

func TestAnalyzer_NoPackageDefaultsNamespace(t *testing.T) {
	g := symgraph.New()
	file := g.AddFile("Loose.java")
	src := []byte("class Loose {\n}\n")
	require.NoError(t, New().Analyze(context.Background(), g, file, "Loose.java", src))

	var found bool
	for _, n := range g.NodesInFile(file) {
		info, ok := g.SourceInfo(n)
		if ok && info.SyntaxType == symgraph.NamespaceDeclaration {
			sym, _ := g.NodeSymbol(n)
			assert.Equal(t, "default", g.Symbol(sym))
			found = true
		}
	}
	assert.True(t, found)
}
