package depxml

import (
	"strings"

	"github.com/viant/symbolreach/symgraph"
)

// memberNode is an (un-deduplicated) node produced while parsing one
// <member name="K:Name"/> entry.
type memberNode struct {
	Kind   symgraph.SyntaxType
	Symbol string
}

// memberEdge is an (un-deduplicated) edge between two member nodes produced
// for the same entry.
type memberEdge struct {
	Source     memberNode
	Sink       memberNode
	Precedence symgraph.Precedence
}

// handleMember turns one "KIND:Qualified.Name(params)" pair into the node
// and edge fragments described in spec §4.D. Unparseable or empty names
// produce no fragments rather than an error, except for kind N, where an
// empty name yields an empty-named namespace node.
func handleMember(kind, name string) ([]memberNode, []memberEdge) {
	switch kind {
	case "N":
		return handleNamespace(name)
	case "T":
		return handleType(name)
	case "F", "P":
		return handleFieldOrProperty(name)
	case "M":
		return handleMethod(name)
	default:
		return nil, nil
	}
}

func handleNamespace(name string) ([]memberNode, []memberEdge) {
	// Empty namespaces are explicitly permitted for kind N.
	return []memberNode{{Kind: symgraph.NamespaceDeclaration, Symbol: name}}, nil
}

func handleType(name string) ([]memberNode, []memberEdge) {
	if name == "" {
		return nil, nil
	}
	parts := strings.Split(name, ".")
	class := memberNode{Kind: symgraph.ClassDef, Symbol: parts[len(parts)-1]}
	ns := memberNode{Kind: symgraph.NamespaceDeclaration, Symbol: joinNamespaceParts(parts[:len(parts)-1], true)}

	nodes := []memberNode{class, ns}
	edges := []memberEdge{
		{Source: ns, Sink: class, Precedence: symgraph.Structural},
		{Source: class, Sink: ns, Precedence: symgraph.FQDNBack},
	}
	return nodes, edges
}

func handleFieldOrProperty(name string) ([]memberNode, []memberEdge) {
	if name == "" {
		return nil, nil
	}
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return nil, nil
	}
	field := memberNode{Kind: symgraph.FieldName, Symbol: parts[len(parts)-1]}
	class := memberNode{Kind: symgraph.ClassDef, Symbol: parts[len(parts)-2]}
	ns := memberNode{Kind: symgraph.NamespaceDeclaration, Symbol: joinNamespaceParts(parts[:len(parts)-2], false)}

	nodes := []memberNode{field, class, ns}
	edges := []memberEdge{
		{Source: ns, Sink: class, Precedence: symgraph.Structural},
		{Source: class, Sink: field, Precedence: symgraph.Structural},
		{Source: field, Sink: class, Precedence: symgraph.FQDNBack},
		{Source: class, Sink: ns, Precedence: symgraph.FQDNBack},
	}
	return nodes, edges
}

func handleMethod(name string) ([]memberNode, []memberEdge) {
	if name == "" {
		return nil, nil
	}
	// Parameter lists are ignored entirely.
	if idx := strings.IndexByte(name, '('); idx >= 0 {
		name = name[:idx]
	}
	parts := strings.Split(name, ".")
	last := parts[len(parts)-1]

	var method, class memberNode
	var rest []string
	if strings.Contains(last, "#ctor") {
		if len(parts) < 2 {
			return nil, nil
		}
		// Constructors carry the class name as their method name.
		className := parts[len(parts)-2]
		method = memberNode{Kind: symgraph.MethodName, Symbol: className}
		class = memberNode{Kind: symgraph.ClassDef, Symbol: className}
		rest = parts[:len(parts)-2]
	} else {
		if len(parts) < 2 {
			return nil, nil
		}
		method = memberNode{Kind: symgraph.MethodName, Symbol: last}
		class = memberNode{Kind: symgraph.ClassDef, Symbol: parts[len(parts)-2]}
		rest = parts[:len(parts)-2]
	}
	ns := memberNode{Kind: symgraph.NamespaceDeclaration, Symbol: joinNamespaceParts(rest, false)}

	nodes := []memberNode{method, class, ns}
	edges := []memberEdge{
		{Source: ns, Sink: class, Precedence: symgraph.Structural},
		{Source: class, Sink: method, Precedence: symgraph.Structural},
		{Source: method, Sink: class, Precedence: symgraph.FQDNBack},
		{Source: class, Sink: ns, Precedence: symgraph.FQDNBack},
	}
	return nodes, edges
}

// joinNamespaceParts dot-joins the namespace-contributing segments. When
// truncateHash is set (only the T/"type" case, per the original analyzer),
// each segment is truncated at its first '#' before joining, dropping the
// interface-qualified-member suffix.
func joinNamespaceParts(parts []string, truncateHash bool) string {
	joined := make([]string, len(parts))
	for i, p := range parts {
		if truncateHash {
			if idx := strings.IndexByte(p, '#'); idx >= 0 {
				p = p[:idx]
			}
		}
		joined[i] = p
	}
	return strings.Join(joined, ".")
}
