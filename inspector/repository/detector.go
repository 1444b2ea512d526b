package repository

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// analyzableTypes mirrors the ecosystems sourceingest.NewRegistry actually
// registers an Analyzer for (golang.New, java.New). Detecting a root for any
// other ecosystem still succeeds — it just means the project's own source
// won't be walked by BuildGraph, only reachable as dependency documentation.
var analyzableTypes = map[string]bool{
	"go":   true,
	"java": true,
}

// Detector walks up from a file or directory looking for the manifest of a
// known ecosystem (go.mod, pom.xml, ...), the marker this module uses to
// decide where a source tree's root sits.
type Detector struct {
	fs               afs.Service
	ecosystemMarkers []string
}

// New creates a project detector using afs for manifest reads, so remote-
// backed source trees resolve the same way local ones do.
func New() *Detector {
	return &Detector{
		fs: afs.New(),
		ecosystemMarkers: []string{
			"go.mod",           // Go
			"pom.xml",          // Java/Maven
			"build.gradle",     // Java/Gradle
			"package.json",     // JavaScript/Node
			"composer.json",    // PHP
			"Cargo.toml",       // Rust
			"pyproject.toml",   // Python
			"requirements.txt", // Python
			"Gemfile",          // Ruby
			".git",             // generic VCS marker, last resort
		},
	}
}

// DetectProject walks up from filePath looking for an ecosystem marker and
// returns the root it found, the ecosystem's declared name, and whether
// sourceingest can analyze that ecosystem's source directly.
func (d *Detector) DetectProject(filePath string, baseURL ...string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)

	info := &Project{
		Type:     "unknown",
		RootPath: absPath,
	}
	if rootPath == "" && len(baseURL) > 0 && baseURL[0] != "" {
		info.RootPath = baseURL[0]
	} else if rootPath != "" {
		info.RootPath = rootPath
		info.Type = projectType
	}
	info.Analyzable = analyzableTypes[info.Type]

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)

	if projectType != "" {
		d.populateProjectName(info, rootPath, projectType)
	}

	return info, nil
}

// findProjectRoot searches up the directory tree for an ecosystem marker.
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.ecosystemMarkers {
			markerPath := filepath.Join(dir, marker)
			if _, err := os.Stat(markerPath); err == nil {
				return dir, determineProjectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// populateProjectName fills info.Name (and, for Go, info.GoModule) from the
// ecosystem's manifest file.
func (d *Detector) populateProjectName(info *Project, rootPath, projectType string) {
	switch projectType {
	case "go":
		name, mod := d.extractGoModule(filepath.Join(rootPath, "go.mod"))
		info.Name = name
		info.GoModule = mod
	case "java":
		if name := d.extractRegex(filepath.Join(rootPath, "pom.xml"), `<artifactId>([^<]+)</artifactId>`); name != "" {
			info.Name = name
			return
		}
		info.Name = d.extractRegexOrDirName(filepath.Join(rootPath, "build.gradle"), `(?:rootProject|project)\.name\s*=\s*['"]([^'"]+)['"]`)
	case "javascript":
		info.Name = d.extractRegexOrDirName(filepath.Join(rootPath, "package.json"), `"name"\s*:\s*"([^"]+)"`)
	case "python":
		if name := d.extractRegex(filepath.Join(rootPath, "pyproject.toml"), `(?:tool\.poetry|project)\.name\s*=\s*["']([^"']+)["']`); name != "" {
			info.Name = name
			return
		}
		info.Name = d.extractRegexOrDirName(filepath.Join(rootPath, "setup.py"), `name\s*=\s*["']([^"']+)["']`)
	case "rust":
		info.Name = d.extractRegexOrDirName(filepath.Join(rootPath, "Cargo.toml"), `\[package\](?:.|\n)*?name\s*=\s*["']([^"']+)["']`)
	default:
		info.Name = filepath.Base(rootPath)
	}
}

// extractGoModule reads the module declaration from a go.mod via afs,
// parsing it with golang.org/x/mod/modfile so info.GoModule carries the
// structured module statement rather than just its path string.
func (d *Detector) extractGoModule(goModPath string) (string, *modfile.Module) {
	content, err := d.fs.DownloadWithURL(context.Background(), goModPath)
	if err != nil || len(content) == 0 {
		return filepath.Base(filepath.Dir(goModPath)), nil
	}
	mod, err := modfile.Parse(goModPath, content, nil)
	if err != nil || mod == nil || mod.Module == nil {
		return filepath.Base(filepath.Dir(goModPath)), nil
	}
	return mod.Module.Mod.Path, mod.Module
}

// extractRegex returns the first submatch of pattern found in path's
// content, or "" if the file is unreadable or doesn't match.
func (d *Detector) extractRegex(path, pattern string) string {
	content, err := d.fs.DownloadWithURL(context.Background(), path)
	if err != nil || len(content) == 0 {
		return ""
	}
	matches := regexp.MustCompile(pattern).FindSubmatch(content)
	if len(matches) < 2 {
		return ""
	}
	return string(matches[1])
}

// extractRegexOrDirName is extractRegex with a fallback to the containing
// directory's base name, for manifests where a missing name field still
// leaves a sensible project name available.
func (d *Detector) extractRegexOrDirName(path, pattern string) string {
	if name := d.extractRegex(path, pattern); name != "" {
		return name
	}
	return filepath.Base(filepath.Dir(path))
}

// determineProjectType maps an ecosystem marker file name onto its type.
func determineProjectType(marker string) string {
	switch marker {
	case "go.mod":
		return "go"
	case "pom.xml", "build.gradle":
		return "java"
	case "package.json":
		return "javascript"
	case "Cargo.toml":
		return "rust"
	case "pyproject.toml", "requirements.txt":
		return "python"
	case "Gemfile":
		return "ruby"
	case "composer.json":
		return "php"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}
