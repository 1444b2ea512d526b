// Package repository locates the root of the source tree a Project analyzes
// and classifies which ecosystem it belongs to, so service.Config.Location
// can be pointed at any file or subdirectory under a project and still
// resolve to the right root before BuildGraph walks it.
package repository

import "golang.org/x/mod/modfile"

// Project describes the source tree rooted above a path handed to
// DetectProject: its ecosystem, name, and whether sourceingest ships an
// Analyzer for it directly (as opposed to only being reachable through
// dependency-documentation indexing).
type Project struct {
	RootPath     string // absolute path to the detected root
	Type         string // ecosystem: go, java, javascript, python, rust, ruby, php, git, unknown
	Name         string // module/package name extracted from the ecosystem's manifest
	RelativePath string // path from RootPath to the file/dir passed to DetectProject
	Analyzable   bool   // true when sourceingest registers an Analyzer for Type
	GoModule     *modfile.Module
}
