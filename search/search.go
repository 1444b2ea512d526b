// Package search compiles a dotted glob pattern ("System.Configuration.*",
// "Get*Section") into per-segment literal-or-regex matchers, and exposes the
// three namespace/symbol matching operations the query engine builds on.
package search

import (
	"regexp"
	"strings"
)

// part is one dot-separated segment of a compiled pattern: either a literal
// string or a regex compiled from a '*'-containing glob.
type part struct {
	literal string
	re      *regexp.Regexp
}

func (p part) matches(s string) bool {
	if p.re != nil {
		return p.re.MatchString(s)
	}
	return p.literal == s
}

// Search is a compiled dotted pattern.
type Search struct {
	parts []part
}

// Compile splits pattern on '.' and compiles each segment: a bare "*" or any
// segment containing "*" becomes a regex (each "*" maps to ".*"); everything
// else is stored as a literal.
func Compile(pattern string) (*Search, error) {
	segments := strings.Split(pattern, ".")
	parts := make([]part, 0, len(segments))
	for _, seg := range segments {
		if strings.Contains(seg, "*") {
			var exprSrc string
			if seg == "*" {
				exprSrc = ".*"
			} else {
				exprSrc = strings.ReplaceAll(regexp.QuoteMeta(seg), `\*`, ".*")
			}
			re, err := regexp.Compile("^" + exprSrc + "$")
			if err != nil {
				return nil, err
			}
			parts = append(parts, part{re: re})
		} else {
			parts = append(parts, part{literal: seg})
		}
	}
	return &Search{parts: parts}, nil
}

// Render renders a Search back into its dotted pattern string, the inverse of
// Compile restricted to patterns produced by Compile itself (round-trip
// property, §8): parse_search . render_search = id.
func (s *Search) Render() string {
	segs := make([]string, len(s.parts))
	for i, p := range s.parts {
		if p.re == nil {
			segs[i] = p.literal
			continue
		}
		src := p.re.String()
		src = strings.TrimPrefix(src, "^")
		src = strings.TrimSuffix(src, "$")
		segs[i] = strings.ReplaceAll(src, ".*", "*")
	}
	return strings.Join(segs, ".")
}

// PartialNamespace reports whether, splitting symbol on '.', every pattern
// segment up to min(len(symbol parts), len(pattern parts)) matches pairwise.
// Excess symbol segments beyond the pattern's length are ignored.
func (s *Search) PartialNamespace(symbol string) bool {
	return s.matchPrefix(symbol)
}

// MatchNamespace has identical semantics to PartialNamespace — the last
// pattern segment is permitted to be a wildcard that also matches deeper
// namespaces, which PartialNamespace's prefix semantics already allow.
func (s *Search) MatchNamespace(symbol string) bool {
	return s.matchPrefix(symbol)
}

func (s *Search) matchPrefix(symbol string) bool {
	segs := strings.Split(symbol, ".")
	for i, seg := range segs {
		if i >= len(s.parts) {
			break
		}
		if !s.parts[i].matches(seg) {
			return false
		}
	}
	return true
}

// MatchSymbol reports whether the last pattern segment matches symbol as a
// whole (no segment splitting on symbol: the last segment is matched against
// the entire string).
func (s *Search) MatchSymbol(symbol string) bool {
	if len(s.parts) == 0 {
		return false
	}
	return s.parts[len(s.parts)-1].matches(symbol)
}
