package service

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/viant/symbolreach/matcher"
	"github.com/viant/symbolreach/query"
)

// referencedCapability is the only capability this provider implements,
// named "referenced" exactly as original_source/src/provider/csharp.rs's
// CapabilitiesResponse does.
const referencedCapability = "referenced"

// Location names which matcher kind an evaluate condition restricts its
// search to, decoded from the condition YAML's "location" field.
type Location string

const (
	LocationAll    Location = "ALL"
	LocationMethod Location = "METHOD"
	LocationField  Location = "FIELD"
	LocationClass  Location = "CLASS"
)

func (l Location) kind() query.Kind {
	switch l {
	case LocationMethod:
		return query.Method
	case LocationField:
		return query.Field
	case LocationClass:
		return query.Class
	default:
		return query.All
	}
}

// referenceCondition mirrors original_source/src/provider/csharp.rs's
// ReferenceCondition: a pattern, an optional location restriction
// (defaulting to ALL), and an optional file-path scope this module doesn't
// yet narrow traversal by (kept for forward YAML compatibility).
type referenceCondition struct {
	Pattern   string   `yaml:"pattern"`
	Location  Location `yaml:"location"`
	FilePaths []string `yaml:"file_paths"`
}

// condition is the top-level shape of an Evaluate request's condition_info
// YAML document, mirroring CSharpCondition.
type condition struct {
	Referenced referenceCondition `yaml:"referenced"`
}

// EvaluateRequest is the plain Go analogue of the gRPC EvaluateRequest
// message: a capability name plus a YAML-encoded condition body. No
// transport is implemented — callers wire this into whatever RPC framework
// they use.
type EvaluateRequest struct {
	Capability    string
	ConditionYAML string
	SourceOnly    bool
}

// EvaluateResponse mirrors ProviderEvaluateResponse: whether the condition
// matched, and the matched locations rendered as results.
type EvaluateResponse struct {
	Matched bool
	Results []query.Result
}

// Evaluate decodes req's condition YAML and runs the corresponding
// reference query against p's installed graph. A NamespaceNotFound error
// from the matcher layer is treated as "no match" rather than a failure,
// mirroring evaluate's explicit NamespaceFQDNNotFoundError-is-not-an-error
// branch.
func (p *Project) Evaluate(req EvaluateRequest) (EvaluateResponse, error) {
	if req.Capability != referencedCapability {
		return EvaluateResponse{}, fmt.Errorf("%w: %s", ErrUnknownCapability, req.Capability)
	}

	var c condition
	if err := yaml.Unmarshal([]byte(req.ConditionYAML), &c); err != nil {
		return EvaluateResponse{}, fmt.Errorf("%w: decode condition: %v", query.ErrInvalidArgument, err)
	}
	if c.Referenced.Location == "" {
		c.Referenced.Location = LocationAll
	}

	results, err := p.Query(c.Referenced.Location.kind(), c.Referenced.Pattern, req.SourceOnly)
	if err != nil {
		if errors.Is(err, matcher.ErrNamespaceNotFound) {
			return EvaluateResponse{Matched: false}, nil
		}
		return EvaluateResponse{}, err
	}

	return EvaluateResponse{Matched: len(results) > 0, Results: results}, nil
}

// Capabilities reports the capabilities this provider implements.
func Capabilities() []string {
	return []string{referencedCapability}
}
