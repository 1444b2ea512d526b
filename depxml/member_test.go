package depxml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/symbolreach/symgraph"
)

func TestHandleMember_Namespace(t *testing.T) {
	nodes, edges := handleMember("N", "System.Configuration")
	assert.Equal(t, []memberNode{{Kind: symgraph.NamespaceDeclaration, Symbol: "System.Configuration"}}, nodes)
	assert.Empty(t, edges)
}

func TestHandleMember_NamespaceEmptyPermitted(t *testing.T) {
	nodes, _ := handleMember("N", "")
	assert.Equal(t, []memberNode{{Kind: symgraph.NamespaceDeclaration, Symbol: ""}}, nodes)
}

func TestHandleMember_TypeEmptyName(t *testing.T) {
	nodes, edges := handleMember("T", "")
	assert.Nil(t, nodes)
	assert.Nil(t, edges)
}

func TestHandleMember_Type(t *testing.T) {
	nodes, edges := handleMember("T", "System.Configuration.AppSettingsSection")
	class := memberNode{Kind: symgraph.ClassDef, Symbol: "AppSettingsSection"}
	ns := memberNode{Kind: symgraph.NamespaceDeclaration, Symbol: "System.Configuration"}
	assert.ElementsMatch(t, []memberNode{class, ns}, nodes)
	assert.Contains(t, edges, memberEdge{Source: ns, Sink: class, Precedence: symgraph.Structural})
	assert.Contains(t, edges, memberEdge{Source: class, Sink: ns, Precedence: symgraph.FQDNBack})
}

func TestHandleMember_TypeHashTruncation(t *testing.T) {
	nodes, _ := handleMember("T", "System.Configuration#Internal.IInternalConfigSystem.Foo")
	var ns memberNode
	for _, n := range nodes {
		if n.Kind == symgraph.NamespaceDeclaration {
			ns = n
		}
	}
	assert.Equal(t, "System.Configuration.IInternalConfigSystem", ns.Symbol)
}

func TestHandleMember_FieldNoNamespace(t *testing.T) {
	nodes, edges := handleMember("F", "Console.Out")
	field := memberNode{Kind: symgraph.FieldName, Symbol: "Out"}
	class := memberNode{Kind: symgraph.ClassDef, Symbol: "Console"}
	ns := memberNode{Kind: symgraph.NamespaceDeclaration, Symbol: ""}
	assert.ElementsMatch(t, []memberNode{field, class, ns}, nodes)
	assert.Contains(t, edges, memberEdge{Source: field, Sink: class, Precedence: symgraph.FQDNBack})
}

func TestHandleMember_FieldSingleSegmentSkipped(t *testing.T) {
	nodes, edges := handleMember("F", "Out")
	assert.Nil(t, nodes)
	assert.Nil(t, edges)
}

func TestHandleMember_Property(t *testing.T) {
	nodes, _ := handleMember("P", "System.Configuration.AppSettingsSection.Settings")
	var field memberNode
	for _, n := range nodes {
		if n.Kind == symgraph.FieldName {
			field = n
		}
	}
	assert.Equal(t, "Settings", field.Symbol)
}

func TestHandleMember_Method(t *testing.T) {
	nodes, edges := handleMember("M", "System.Configuration.AppSettingsSection.GetSection(System.String)")
	method := memberNode{Kind: symgraph.MethodName, Symbol: "GetSection"}
	class := memberNode{Kind: symgraph.ClassDef, Symbol: "AppSettingsSection"}
	ns := memberNode{Kind: symgraph.NamespaceDeclaration, Symbol: "System.Configuration"}
	assert.ElementsMatch(t, []memberNode{method, class, ns}, nodes)
	assert.Contains(t, edges, memberEdge{Source: class, Sink: method, Precedence: symgraph.Structural})
}

func TestHandleMember_MethodConstructor(t *testing.T) {
	nodes, _ := handleMember("M", "System.Configuration.AppSettingsSection.#ctor")
	var method, class memberNode
	for _, n := range nodes {
		switch n.Kind {
		case symgraph.MethodName:
			method = n
		case symgraph.ClassDef:
			class = n
		}
	}
	assert.Equal(t, "AppSettingsSection", method.Symbol)
	assert.Equal(t, "AppSettingsSection", class.Symbol)
}

func TestHandleMember_MethodEmptyName(t *testing.T) {
	nodes, edges := handleMember("M", "")
	assert.Nil(t, nodes)
	assert.Nil(t, edges)
}

func TestHandleMember_UnknownKindIgnored(t *testing.T) {
	nodes, edges := handleMember("E", "Some.Event")
	assert.Nil(t, nodes)
	assert.Nil(t, edges)
}
