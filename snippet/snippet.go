// Package snippet renders the source text surrounding a matched location,
// the code-snippet external collaborator named in spec.md §6. Grounded on
// the teacher's use of github.com/viant/afs as its filesystem abstraction
// throughout inspector/repository and analyzer, so the same reader works
// whether uri names a local path or a remote-backed project tree.
package snippet

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"

	"github.com/viant/symbolreach/symgraph"
)

// Render returns the lines of source at uri spanning loc, padded by
// contextLines of surrounding text on each side (clamped to the file's
// bounds). Line numbers in loc are zero-indexed, as symgraph.Position
// documents.
func Render(ctx context.Context, fs afs.Service, uri string, loc symgraph.Span, contextLines int) (string, error) {
	data, err := fs.DownloadWithURL(ctx, uri)
	if err != nil {
		return "", fmt.Errorf("snippet: download %s: %w", uri, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 0 {
		return "", nil
	}

	start := loc.Start.Line - contextLines
	if start < 0 {
		start = 0
	}
	end := loc.End.Line + contextLines
	if end >= len(lines) {
		end = len(lines) - 1
	}
	if start > end {
		return "", nil
	}

	return strings.Join(lines[start:end+1], "\n"), nil
}
