package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectProjectRoot_FindsGoModule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/widgets\n\ngo 1.23\n"), 0o644))
	sub := filepath.Join(dir, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "widget.go"), []byte("package pkg\n"), 0o644))

	proj, err := DetectProjectRoot(filepath.Join(sub, "widget.go"))
	require.NoError(t, err)
	assert.Equal(t, "go", proj.Type)
	assert.Equal(t, "example.com/widgets", proj.Name)
	assert.True(t, proj.Analyzable)
	require.NotNil(t, proj.GoModule)
	assert.Equal(t, "example.com/widgets", proj.GoModule.Mod.Path)
}

func TestDetectProjectRoot_UnanalyzableEcosystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name": "widgets-ui"}`), 0o644))

	proj, err := DetectProjectRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, "javascript", proj.Type)
	assert.Equal(t, "widgets-ui", proj.Name)
	assert.False(t, proj.Analyzable)
	assert.Nil(t, proj.GoModule)
}
