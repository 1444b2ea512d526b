// Package symgraph implements the symbol-graph substrate: a handle-indexed
// arena of nodes, edges, symbols and files, plus FQDN reconstruction over the
// precedence-10 back-edge spine.
package symgraph

// NodeHandle is a stable index into a Graph's node arena.
type NodeHandle uint32

// SymbolHandle is a stable index into a Graph's interned-symbol arena.
type SymbolHandle uint32

// FileHandle is a stable index into a Graph's file arena.
type FileHandle uint32

// StringHandle is a stable index into a Graph's interned-string arena, used
// for debug-info key/value pairs and other non-symbol strings.
type StringHandle uint32

// invalidNode marks the absence of a node handle (e.g. "no precedence-10 edge").
const invalidNode = ^NodeHandle(0)
