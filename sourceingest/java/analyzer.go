// Package java implements sourceingest.Analyzer for Java source files,
// grounded on inspector/java/inspector.go and declaration.go's
// go-tree-sitter walking idiom (sitter.Parser + the Java grammar,
// ChildByFieldName/NamedChild traversal), adapted to emit symbol-graph
// fragments instead of the teacher's own graph.Type/graph.Function model.
package java

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/viant/symbolreach/symgraph"
)

// Analyzer parses Java source with go-tree-sitter's Java grammar.
type Analyzer struct{}

// New creates a Java source analyzer.
func New() *Analyzer { return &Analyzer{} }

// Extensions reports the file extensions this analyzer handles.
func (a *Analyzer) Extensions() []string { return []string{"java"} }

// Analyze emits one NamespaceDeclaration per package declaration, one
// ClassDef per top-level class/interface/enum declaration, one MethodName
// per method or constructor, and one FieldName per field declaration.
func (a *Analyzer) Analyze(ctx context.Context, g *symgraph.Graph, file symgraph.FileHandle, path string, src []byte) error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return fmt.Errorf("java: parse %s: %w", path, err)
	}
	root := tree.RootNode()

	w := &walker{g: g, file: file, src: src}

	pkgName := "default"
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() == "package_declaration" {
			if nameNode := child.NamedChild(0); nameNode != nil {
				pkgName = nameNode.Content(src)
			}
		}
	}
	ns := w.addNode(pkgName, symgraph.NamespaceDeclaration, true, nil)
	w.ns = ns

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "import_declaration":
			w.declareImport(child)
		case "class_declaration", "interface_declaration", "enum_declaration":
			w.declareType(child)
		}
	}

	comp := w.addNode(path, symgraph.CompUnit, true, nil)
	g.AddEdge(comp, ns, symgraph.Structural)

	return nil
}

type walker struct {
	g    *symgraph.Graph
	file symgraph.FileHandle
	src  []byte
	ns   symgraph.NodeHandle
}

func (w *walker) addNode(symbol string, kind symgraph.SyntaxType, isDef bool, n *sitter.Node) symgraph.NodeHandle {
	info := symgraph.SourceInfo{SyntaxType: kind, IsDefinition: isDef, IsReference: !isDef}
	if n != nil {
		info.Span = spanOf(n)
	}
	return w.g.AddNode(
		symgraph.WithFile(w.file),
		symgraph.WithSymbol(w.g.InternSymbol(symbol)),
		symgraph.WithSourceInfo(info),
	)
}

func spanOf(n *sitter.Node) symgraph.Span {
	start, end := n.StartPoint(), n.EndPoint()
	return symgraph.Span{
		Start: symgraph.Position{Line: int(start.Row), Column: int(start.Column)},
		End:   symgraph.Position{Line: int(end.Row), Column: int(end.Column)},
	}
}

// declareImport emits an Import node for the dotted path named by an
// import_declaration, e.g. "import java.util.List;" -> "java.util.List".
// Wildcard imports ("import java.util.*;") are recorded with the trailing
// "*" kept, matching how a dotted pattern would itself express "everything
// under this namespace".
func (w *walker) declareImport(node *sitter.Node) {
	var path string
	wildcard := false
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			path = child.Content(w.src)
		case "asterisk":
			wildcard = true
		}
	}
	if path == "" {
		return
	}
	if wildcard {
		path += ".*"
	}
	w.addNode(path, symgraph.Import, true, node)
}

func (w *walker) declareType(node *sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	className := nameNode.Content(w.src)
	class := w.addNode(className, symgraph.ClassDef, true, nameNode)
	w.g.AddEdge(w.ns, class, symgraph.Structural)
	w.g.AddEdge(class, w.ns, symgraph.FQDNBack)

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case "field_declaration":
			w.declareField(class, member)
		case "method_declaration", "constructor_declaration":
			w.declareMethod(class, member)
		}
	}
}

func (w *walker) declareField(class symgraph.NodeHandle, node *sitter.Node) {
	declarator := node.ChildByFieldName("declarator")
	if declarator == nil {
		return
	}
	nameNode := declarator.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	field := w.addNode(nameNode.Content(w.src), symgraph.FieldName, true, nameNode)
	w.g.AddEdge(class, field, symgraph.Structural)
	w.g.AddEdge(field, class, symgraph.FQDNBack)
}

func (w *walker) declareMethod(class symgraph.NodeHandle, node *sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	method := w.addNode(nameNode.Content(w.src), symgraph.MethodName, true, nameNode)
	w.g.AddEdge(class, method, symgraph.Structural)
	w.g.AddEdge(method, class, symgraph.FQDNBack)

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}
	w.walkReferences(method, body)
}

// walkReferences emits a reference node for every field_access expression
// (accessor.accessed) and bare identifier found in a method body, mirroring
// the Go analyzer's treatment of selector/identifier expressions.
func (w *walker) walkReferences(method symgraph.NodeHandle, node *sitter.Node) {
	switch node.Type() {
	case "field_access":
		obj := node.ChildByFieldName("object")
		field := node.ChildByFieldName("field")
		if obj != nil && field != nil && obj.Type() == "identifier" {
			symbol := obj.Content(w.src) + "." + field.Content(w.src)
			ref := w.addNode(symbol, symgraph.Name, false, node)
			w.g.AddEdge(method, ref, symgraph.Structural)
			return
		}
	case "method_invocation":
		obj := node.ChildByFieldName("object")
		name := node.ChildByFieldName("name")
		if obj != nil && name != nil && obj.Type() == "identifier" {
			symbol := obj.Content(w.src) + "." + name.Content(w.src)
			ref := w.addNode(symbol, symgraph.Name, false, node)
			w.g.AddEdge(method, ref, symgraph.Structural)
			return
		}
	case "identifier":
		ref := w.addNode(node.Content(w.src), symgraph.Name, false, node)
		w.g.AddEdge(method, ref, symgraph.Structural)
		return
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		w.walkReferences(method, node.NamedChild(i))
	}
}
