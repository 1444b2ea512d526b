package snippet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/viant/symbolreach/symgraph"
)

func TestRender_ClampsToFileBounds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	content := "line0\nline1\nline2\nline3\nline4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fs := afs.New()

	out, err := Render(context.Background(), fs, path, symgraph.Span{
		Start: symgraph.Position{Line: 2, Column: 0},
		End:   symgraph.Position{Line: 2, Column: 5},
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\nline3", out)
}

func TestRender_ClampsNegativeStart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	content := "line0\nline1\nline2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fs := afs.New()

	out, err := Render(context.Background(), fs, path, symgraph.Span{
		Start: symgraph.Position{Line: 0, Column: 0},
		End:   symgraph.Position{Line: 0, Column: 5},
	}, 5)
	require.NoError(t, err)
	assert.Equal(t, "line0\nline1\nline2", out)
}
