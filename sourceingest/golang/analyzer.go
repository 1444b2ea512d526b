// Package golang implements sourceingest.Analyzer for Go source files,
// grounded on inspector/golang/inspector.go's go/parser + go/ast +
// token.FileSet setup, adapted to emit symbol-graph fragments instead of
// the teacher's own graph.File/graph.Type model.
package golang

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/viant/symbolreach/symgraph"
)

// Analyzer parses Go source with the standard library's parser and walks
// the resulting AST into graph fragments.
type Analyzer struct{}

// New creates a Go source analyzer.
func New() *Analyzer { return &Analyzer{} }

// Extensions reports the file extensions this analyzer handles.
func (a *Analyzer) Extensions() []string { return []string{"go"} }

// Analyze parses src as Go and emits one NamespaceDeclaration per package
// clause, one ClassDef per declared type, one MethodName per function or
// method declaration (package-level functions hang directly off the
// namespace), one FieldName per struct field, and one reference node per
// identifier or selector expression encountered in a function body.
func (a *Analyzer) Analyze(_ context.Context, g *symgraph.Graph, file symgraph.FileHandle, path string, src []byte) error {
	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("golang: parse %s: %w", path, err)
	}

	w := &walker{g: g, file: file, fset: fset, classes: make(map[string]symgraph.NodeHandle)}

	pkgName := astFile.Name.Name
	ns := w.addNode(pkgName, symgraph.NamespaceDeclaration, true, token.NoPos)
	w.ns = ns

	w.declareImports(astFile)

	for _, decl := range astFile.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok == token.TYPE {
				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					w.declareType(ts)
				}
			}
		case *ast.FuncDecl:
			w.declareFunc(d)
		}
	}

	comp := w.addNode(path, symgraph.CompUnit, true, token.NoPos)
	g.AddEdge(comp, ns, symgraph.Structural)

	return nil
}

type walker struct {
	g       *symgraph.Graph
	file    symgraph.FileHandle
	fset    *token.FileSet
	ns      symgraph.NodeHandle
	classes map[string]symgraph.NodeHandle
}

func (w *walker) addNode(symbol string, kind symgraph.SyntaxType, isDef bool, pos token.Pos) symgraph.NodeHandle {
	info := symgraph.SourceInfo{SyntaxType: kind, IsDefinition: isDef, IsReference: !isDef}
	if pos != token.NoPos {
		info.Span = spanOf(w.fset, pos, pos+token.Pos(len(symbol)))
	}
	return w.g.AddNode(
		symgraph.WithFile(w.file),
		symgraph.WithSymbol(w.g.InternSymbol(symbol)),
		symgraph.WithSourceInfo(info),
	)
}

func spanOf(fset *token.FileSet, start, end token.Pos) symgraph.Span {
	sp := fset.Position(start)
	ep := fset.Position(end)
	// token.Position is 1-based; symgraph.Position is zero-indexed.
	return symgraph.Span{
		Start: symgraph.Position{Line: sp.Line - 1, Column: sp.Column - 1},
		End:   symgraph.Position{Line: ep.Line - 1, Column: ep.Column - 1},
	}
}

// declareImports emits one Import node per import path, grouped via
// golang.org/x/tools/go/ast/astutil's import-block splitting so that a
// blank-line-separated group of imports is walked the same way goimports
// itself would present it.
func (w *walker) declareImports(f *ast.File) {
	for _, group := range astutil.Imports(w.fset, f) {
		for _, spec := range group {
			path, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				continue
			}
			w.addNode(path, symgraph.Import, true, spec.Path.Pos())
		}
	}
}

// classNode returns the ClassDef node for name, creating it (and wiring it
// to the namespace) on first use.
func (w *walker) classNode(name string, pos token.Pos) symgraph.NodeHandle {
	if h, ok := w.classes[name]; ok {
		return h
	}
	class := w.addNode(name, symgraph.ClassDef, true, pos)
	w.g.AddEdge(w.ns, class, symgraph.Structural)
	w.g.AddEdge(class, w.ns, symgraph.FQDNBack)
	w.classes[name] = class
	return class
}

func (w *walker) declareType(ts *ast.TypeSpec) {
	class := w.classNode(ts.Name.Name, ts.Name.Pos())

	st, ok := ts.Type.(*ast.StructType)
	if !ok || st.Fields == nil {
		return
	}
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			// Embedded field: the type expression itself is the field name.
			if ident := embeddedName(f.Type); ident != "" {
				w.addField(class, ident, f.Pos())
			}
			continue
		}
		for _, name := range f.Names {
			w.addField(class, name.Name, name.Pos())
		}
	}
}

func (w *walker) addField(class symgraph.NodeHandle, name string, pos token.Pos) {
	field := w.addNode(name, symgraph.FieldName, true, pos)
	w.g.AddEdge(class, field, symgraph.Structural)
	w.g.AddEdge(field, class, symgraph.FQDNBack)
}

func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	default:
		return ""
	}
}

// declareFunc handles both free functions (attached directly under the
// namespace) and methods (attached under their receiver's ClassDef), then
// walks the body for reference nodes.
func (w *walker) declareFunc(fd *ast.FuncDecl) {
	var method symgraph.NodeHandle
	if fd.Recv != nil && len(fd.Recv.List) > 0 {
		recvName := embeddedName(fd.Recv.List[0].Type)
		class := w.classNode(recvName, fd.Recv.List[0].Pos())
		method = w.addNode(fd.Name.Name, symgraph.MethodName, true, fd.Name.Pos())
		w.g.AddEdge(class, method, symgraph.Structural)
		w.g.AddEdge(method, class, symgraph.FQDNBack)
	} else {
		method = w.addNode(fd.Name.Name, symgraph.MethodName, true, fd.Name.Pos())
		w.g.AddEdge(w.ns, method, symgraph.Structural)
		w.g.AddEdge(method, w.ns, symgraph.FQDNBack)
	}

	if fd.Body == nil {
		return
	}
	ast.Inspect(fd.Body, func(n ast.Node) bool {
		switch expr := n.(type) {
		case *ast.DeclStmt:
			w.declareLocalVars(method, expr)
			return true
		case *ast.AssignStmt:
			if expr.Tok == token.DEFINE {
				w.declareShortVars(method, expr)
			}
			return true
		case *ast.SelectorExpr:
			if id, ok := expr.X.(*ast.Ident); ok {
				symbol := id.Name + "." + expr.Sel.Name
				ref := w.addNode(symbol, symgraph.Name, false, expr.Pos())
				w.g.AddEdge(method, ref, symgraph.Structural)
				return false
			}
		case *ast.Ident:
			ref := w.addNode(expr.Name, symgraph.Name, false, expr.Pos())
			w.g.AddEdge(method, ref, symgraph.Structural)
		}
		return true
	})
}

// declareLocalVars handles "var x T" declarations, emitting one LocalVar
// node per named variable with an explicit type, wired to a reference node
// for T — precisely the shape query.resolveLocalVarMember expects (§4.G's
// "first outgoing reference edge as the type annotation").
func (w *walker) declareLocalVars(method symgraph.NodeHandle, stmt *ast.DeclStmt) {
	gd, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || gd.Tok != token.VAR {
		return
	}
	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok || vs.Type == nil {
			continue
		}
		typeName := embeddedName(vs.Type)
		if typeName == "" {
			continue
		}
		for _, name := range vs.Names {
			w.addLocalVar(method, name.Name, typeName, name.Pos())
		}
	}
}

// declareShortVars handles "x := &T{...}" / "x := T{...}" composite-literal
// short variable declarations, the only shape from which a declared type can
// be recovered without full type inference.
func (w *walker) declareShortVars(method symgraph.NodeHandle, stmt *ast.AssignStmt) {
	if len(stmt.Lhs) != len(stmt.Rhs) {
		return
	}
	for i, lhs := range stmt.Lhs {
		ident, ok := lhs.(*ast.Ident)
		if !ok || ident.Name == "_" {
			continue
		}
		typeName := compositeLiteralType(stmt.Rhs[i])
		if typeName == "" {
			continue
		}
		w.addLocalVar(method, ident.Name, typeName, ident.Pos())
	}
}

func compositeLiteralType(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.UnaryExpr:
		return compositeLiteralType(e.X)
	case *ast.CompositeLit:
		return embeddedName(e.Type)
	default:
		return ""
	}
}

func (w *walker) addLocalVar(method symgraph.NodeHandle, varName, typeName string, pos token.Pos) {
	local := w.addNode(varName, symgraph.LocalVar, true, pos)
	w.g.AddEdge(method, local, symgraph.Structural)
	typeRef := w.addNode(typeName, symgraph.Name, false, pos)
	w.g.AddEdge(local, typeRef, symgraph.Structural)
}
