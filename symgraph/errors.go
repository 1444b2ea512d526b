package symgraph

import "errors"

// ErrUnknownSymbolType is the sentinel for a refused node creation (e.g. a
// duplicate id for a kind that must be unique within a file). No function in
// this package returns it: AddNode accepts every node.
var ErrUnknownSymbolType = errors.New("symgraph: unknown symbol type")

// ErrUnknownNodeType is the sentinel for a SyntaxType string outside the
// closed enum where a known hierarchical kind is required. No function in
// this package returns it: ParseSyntaxType maps unknown strings to Name.
var ErrUnknownNodeType = errors.New("symgraph: unknown node type")
