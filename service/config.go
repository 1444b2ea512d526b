package service

// AnalysisMode controls whether dependency fragments are indexed alongside
// project source, grounded on original_source/src/provider/mod.rs's
// AnalysisMode (Source vs Full).
type AnalysisMode int

const (
	// ModeSourceOnly indexes only the project's own source tree.
	ModeSourceOnly AnalysisMode = iota
	// ModeFull additionally resolves and indexes dependency documentation XML.
	ModeFull
)

func (m AnalysisMode) String() string {
	switch m {
	case ModeFull:
		return "full"
	default:
		return "source"
	}
}

// Config describes one project's analysis setup, handed in programmatically
// by the caller (no config-file library — matching the teacher's own
// DefaultConfig-plus-overrides construction style in inspector/info/config.go).
type Config struct {
	// Location is the project's source-tree root.
	Location string
	// DBPath is the SQLite fragment-cache file path.
	DBPath string
	// Mode selects source-only vs full (source + dependencies) analysis.
	Mode AnalysisMode
	// ProviderSpecificConfig carries arbitrary caller-supplied tool settings
	// (e.g. dependency restore locations), mirroring Project::get_tools's
	// provider_specific_config map.
	ProviderSpecificConfig map[string]string
	// ContextLines is the number of lines of surrounding source a snippet
	// request returns around a matched location.
	ContextLines int
}

// DefaultConfig returns a Config with source-only analysis and no context
// lines, matching inspector/info.DefaultConfig's plain-struct-literal style.
func DefaultConfig() *Config {
	return &Config{
		Mode:                   ModeSourceOnly,
		ProviderSpecificConfig: map[string]string{},
		ContextLines:           0,
	}
}
