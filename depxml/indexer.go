// Package depxml indexes compiler-emitted documentation XML (the
// "<member name="K:Qualified.Name(params)"/>" format) into symbol-graph
// fragments: one NamespaceDeclaration/ClassDef/MethodName/FieldName spine per
// distinct dotted name, rooted at a CompUnit node named after the XML file's
// path.
package depxml

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/viant/symbolreach/symgraph"
)

// Stats summarizes one Index call, for logging and tests.
type Stats struct {
	MembersSeen      int
	MembersSkipped   int
	NodesCreated     int
	EdgesCreated     int
	NamespacesLinked int
}

type edgeKey struct {
	src, sink  symgraph.NodeHandle
	precedence symgraph.Precedence
}

// Index streams r as documentation XML, indexing every <member> entry into g
// under file. path becomes the symbol of the file's CompUnit node. Errors on
// a single member entry (malformed "name" attribute, an unrecognized member
// kind) are counted in Stats and skipped; only a malformed XML document or a
// cancelled context abort the call.
func Index(ctx context.Context, g *symgraph.Graph, file symgraph.FileHandle, path string, r io.Reader) (*Stats, error) {
	stats := &Stats{}
	dec := xml.NewDecoder(r)

	var rawNodes []memberNode
	var rawEdges []memberEdge

	for {
		if err := ctx.Err(); err != nil {
			return stats, ErrCancelled
		}
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("%w: %v", ErrParse, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "member" {
			continue
		}
		raw, ok := findAttr(start.Attr, "name")
		if !ok {
			continue
		}
		kind, qualified, ok := splitMemberName(raw)
		if !ok {
			stats.MembersSkipped++
			continue
		}
		stats.MembersSeen++
		nodes, edges := handleMember(kind, qualified)
		if len(nodes) == 0 && len(edges) == 0 {
			stats.MembersSkipped++
			continue
		}
		rawNodes = append(rawNodes, nodes...)
		rawEdges = append(rawEdges, edges...)
	}

	created := make(map[memberNode]symgraph.NodeHandle, len(rawNodes))
	namespaceNodes := make(map[symgraph.NodeHandle]bool)
	for _, n := range rawNodes {
		if _, ok := created[n]; ok {
			continue
		}
		h := createMemberNode(g, file, n)
		created[n] = h
		stats.NodesCreated++
		if n.Kind == symgraph.NamespaceDeclaration {
			namespaceNodes[h] = true
		}
	}

	seenEdges := make(map[edgeKey]bool, len(rawEdges))
	for _, e := range rawEdges {
		src, ok := created[e.Source]
		if !ok {
			return stats, ErrUnknownNodeType
		}
		sink, ok := created[e.Sink]
		if !ok {
			return stats, ErrUnknownNodeType
		}
		key := edgeKey{src, sink, e.Precedence}
		if seenEdges[key] {
			continue
		}
		seenEdges[key] = true
		g.AddEdge(src, sink, e.Precedence)
		stats.EdgesCreated++
	}

	comp := createMemberNode(g, file, memberNode{Kind: symgraph.CompUnit, Symbol: path})
	stats.NodesCreated++
	for ns := range namespaceNodes {
		g.AddEdge(comp, ns, symgraph.Structural)
		stats.EdgesCreated++
		stats.NamespacesLinked++
	}

	return stats, nil
}

func createMemberNode(g *symgraph.Graph, file symgraph.FileHandle, n memberNode) symgraph.NodeHandle {
	sym := g.InternSymbol(n.Symbol)
	return g.AddNode(
		symgraph.WithFile(file),
		symgraph.WithSymbol(sym),
		symgraph.WithSourceInfo(symgraph.SourceInfo{SyntaxType: n.Kind, IsDefinition: true}),
	)
}

func findAttr(attrs []xml.Attr, local string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// splitMemberName splits "K:Qualified.Name(params)" into its kind sigil and
// qualified name. Entries with no ':' are unparseable and skipped.
func splitMemberName(raw string) (kind, qualified string, ok bool) {
	idx := strings.IndexByte(raw, ':')
	if idx < 0 {
		return "", "", false
	}
	return raw[:idx], raw[idx+1:], true
}
