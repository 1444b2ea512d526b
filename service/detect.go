package service

import "github.com/viant/symbolreach/inspector/repository"

// DetectProjectRoot identifies the project root and ecosystem markers (go.mod,
// pom.xml, package.json, ...) above path, and reports whether sourceingest
// can analyze that ecosystem's source directly via Project.Analyzable.
// Callers can use this to resolve a Config.Location pointed at a file or
// subdirectory before calling NewProject/BuildGraph.
func DetectProjectRoot(path string) (*repository.Project, error) {
	return repository.New().DetectProject(path)
}
