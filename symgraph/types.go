package symgraph

// SyntaxType is the closed enum of node kinds the substrate understands.
// Unknown strings normalize to Name (invariant, see ParseSyntaxType).
type SyntaxType int

const (
	Name SyntaxType = iota
	Import
	CompUnit
	NamespaceDeclaration
	ClassDef
	MethodName
	FieldName
	LocalVar
	Argument
)

var syntaxTypeNames = map[string]SyntaxType{
	"import":                Import,
	"comp_unit":             CompUnit,
	"namespace_declaration": NamespaceDeclaration,
	"class_def":             ClassDef,
	"method_name":           MethodName,
	"field_name":            FieldName,
	"local_var":             LocalVar,
	"argument":              Argument,
	"name":                  Name,
}

// ParseSyntaxType maps a raw grammar-emitted string onto the closed enum.
// Unrecognized strings, including the empty string, normalize to Name.
func ParseSyntaxType(s string) SyntaxType {
	if t, ok := syntaxTypeNames[s]; ok {
		return t
	}
	return Name
}

func (t SyntaxType) String() string {
	for name, v := range syntaxTypeNames {
		if v == t {
			return name
		}
	}
	return "name"
}

// Precedence is the only distinguishing attribute of an Edge. 0 is
// structural/containment; 10 is the FQDN back-edge. Every other value behaves
// as structural, but only these two are ever emitted.
type Precedence int32

const (
	Structural Precedence = 0
	FQDNBack   Precedence = 10
)

// Edge is a directed arc from one node to another.
type Edge struct {
	Source     NodeHandle
	Sink       NodeHandle
	Precedence Precedence
}

// Position is a zero-indexed line/column pair.
type Position struct {
	Line   int
	Column int
}

// Span is a half-open [Start,End) source range.
type Span struct {
	Start Position
	End   Position
}

// Degenerate reports whether the span covers no text at all.
func (s Span) Degenerate() bool {
	return s.Start == s.End
}

// Lines returns end.Line - start.Line, used as the primary tightest-span key.
func (s Span) Lines() int {
	return s.End.Line - s.Start.Line
}

// SourceInfo is optional per-node metadata. A node with no SourceInfo is a
// purely structural bridge (§4.A).
type SourceInfo struct {
	SyntaxType  SyntaxType
	Span        Span
	IsReference bool
	IsDefinition bool
	IsRoot      bool
}

// Fqdn is the reconstructed fully-qualified dotted name of a definition.
// Any subset of fields may be populated; equality is structural.
type Fqdn struct {
	Namespace *string
	Class     *string
	Method    *string
	Field     *string
}

func strPtr(s string) *string { return &s }

// Equal reports structural equality between two Fqdns.
func (f Fqdn) Equal(o Fqdn) bool {
	return eqStrPtr(f.Namespace, o.Namespace) &&
		eqStrPtr(f.Class, o.Class) &&
		eqStrPtr(f.Method, o.Method) &&
		eqStrPtr(f.Field, o.Field)
}

// Key renders a Fqdn into a string suitable for use as a map key, so matchers
// can index sets of Fqdns without needing a Go-comparable struct (the pointer
// fields make Fqdn itself unsuitable as a map key).
func (f Fqdn) Key() string {
	return join4(derefOr(f.Namespace, "\x00"), derefOr(f.Class, "\x00"), derefOr(f.Method, "\x00"), derefOr(f.Field, "\x00"))
}

func join4(a, b, c, d string) string {
	return a + "\x1f" + b + "\x1f" + c + "\x1f" + d
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func eqStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
