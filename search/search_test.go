package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_LiteralMatchesExactly(t *testing.T) {
	s, err := Compile("System.Configuration.ConfigurationManager")
	require.NoError(t, err)

	assert.True(t, s.MatchNamespace("System.Configuration.ConfigurationManager"))
	assert.False(t, s.MatchNamespace("System.Configuration.Other"))
}

func TestCompile_WildcardSegment(t *testing.T) {
	s, err := Compile("System.Configuration.*")
	require.NoError(t, err)

	assert.True(t, s.MatchNamespace("System.Configuration.ConfigurationManager"))
	assert.True(t, s.MatchNamespace("System.Configuration.Internal"))
	assert.False(t, s.MatchNamespace("System.Other.Thing"))
}

func TestCompile_PartialWildcardSegment(t *testing.T) {
	s, err := Compile("Get*Section")
	require.NoError(t, err)

	assert.True(t, s.MatchSymbol("GetSection"))
	assert.True(t, s.MatchSymbol("GetConfigSection"))
	assert.False(t, s.MatchSymbol("SetSection"))
}

func TestPartialNamespace_IgnoresExcessSymbolSegments(t *testing.T) {
	s, err := Compile("System.Configuration")
	require.NoError(t, err)

	assert.True(t, s.PartialNamespace("System.Configuration.ConfigurationManager.GetSection"))
	assert.False(t, s.PartialNamespace("System.Other.ConfigurationManager"))
}

func TestMatchSymbol_NoPartsNeverMatches(t *testing.T) {
	var s Search
	assert.False(t, s.MatchSymbol("anything"))
}

func TestRender_RoundTripsCompiledPattern(t *testing.T) {
	for _, pattern := range []string{
		"System.Configuration.ConfigurationManager",
		"System.Configuration.*",
		"Get*Section",
		"*",
	} {
		s, err := Compile(pattern)
		require.NoError(t, err)
		assert.Equal(t, pattern, s.Render())
	}
}
