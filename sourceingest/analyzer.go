// Package sourceingest defines the pluggable per-language front end that
// turns source text into symbol-graph fragments. Grounded on
// inspector/inspector.go's Inspector/Factory pluggable-per-extension
// pattern: one Analyzer implementation per language, selected by file
// extension, sharing the same entry contract.
package sourceingest

import (
	"context"

	"github.com/viant/symbolreach/symgraph"
)

// Analyzer turns one source file's bytes into graph fragments appended
// directly to g, anchored at file. Implementations emit
// NamespaceDeclaration/ClassDef/MethodName/FieldName definitions plus
// reference nodes for identifier and member-access expressions, and must
// create a CompUnit node for the file the way depxml does for dependency
// entries.
type Analyzer interface {
	// Extensions lists the file extensions (without the leading dot,
	// lower-case) this analyzer claims, e.g. "go" or "java".
	Extensions() []string

	// Analyze parses src and appends its fragments to g under file. path is
	// used as the CompUnit node's symbol.
	Analyze(ctx context.Context, g *symgraph.Graph, file symgraph.FileHandle, path string, src []byte) error
}

// Registry dispatches to an Analyzer by file extension.
type Registry struct {
	byExtension map[string]Analyzer
}

// NewRegistry builds a Registry from a list of analyzers, indexing each by
// every extension it claims. A later analyzer overwrites an earlier one
// registered for the same extension.
func NewRegistry(analyzers ...Analyzer) *Registry {
	r := &Registry{byExtension: make(map[string]Analyzer)}
	for _, a := range analyzers {
		for _, ext := range a.Extensions() {
			r.byExtension[ext] = a
		}
	}
	return r
}

// For returns the analyzer registered for ext, if any.
func (r *Registry) For(ext string) (Analyzer, bool) {
	a, ok := r.byExtension[ext]
	return a, ok
}
