package query

import (
	"sort"

	"github.com/viant/symbolreach/symgraph"
)

// Result is one reference-search hit. Grounded on
// results.rs:ResultNode/Location/Position.
type Result struct {
	FileURI      string
	LineNumber   int
	CodeLocation symgraph.Span
	SyntaxType   string
	Symbol       string
}

// Dedup collapses results sharing the same (FileURI, LineNumber) down to the
// single tightest span (fewest lines, then earliest start column, then
// earliest end column), then returns the
// survivors in the total order (file_uri, line_number, code_location,
// syntax_type, symbol).
func Dedup(results []Result) []Result {
	type key struct {
		file string
		line int
	}
	best := make(map[key]Result, len(results))
	for _, r := range results {
		k := key{r.FileURI, r.LineNumber}
		cur, ok := best[k]
		if !ok || tighter(r.CodeLocation, cur.CodeLocation) {
			best[k] = r
		}
	}

	out := make([]Result, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// tighter orders spans lexicographically by (lines spanned, start column, end
// column): among candidates covering the same line, the one starting at the
// smallest character wins regardless of width.
func tighter(a, b symgraph.Span) bool {
	al, bl := a.Lines(), b.Lines()
	if al != bl {
		return al < bl
	}
	if a.Start.Column != b.Start.Column {
		return a.Start.Column < b.Start.Column
	}
	return a.End.Column < b.End.Column
}

func less(a, b Result) bool {
	if a.FileURI != b.FileURI {
		return a.FileURI < b.FileURI
	}
	if a.LineNumber != b.LineNumber {
		return a.LineNumber < b.LineNumber
	}
	if c := compareLocation(a.CodeLocation, b.CodeLocation); c != 0 {
		return c < 0
	}
	if a.SyntaxType != b.SyntaxType {
		return a.SyntaxType < b.SyntaxType
	}
	return a.Symbol < b.Symbol
}

func compareLocation(a, b symgraph.Span) int {
	if c := comparePosition(a.Start, b.Start); c != 0 {
		return c
	}
	return comparePosition(a.End, b.End)
}

func comparePosition(a, b symgraph.Position) int {
	if a.Line != b.Line {
		return a.Line - b.Line
	}
	return a.Column - b.Column
}
