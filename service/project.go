package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"

	"github.com/viant/symbolreach/depxml"
	"github.com/viant/symbolreach/query"
	"github.com/viant/symbolreach/sourceingest"
	"github.com/viant/symbolreach/sourceingest/golang"
	"github.com/viant/symbolreach/sourceingest/java"
	"github.com/viant/symbolreach/store"
	"github.com/viant/symbolreach/symgraph"
)

// projectSourceMarker is the well-known symbol wired (via a structural edge)
// to every CompUnit node belonging to the project's own source tree, as
// opposed to a dependency. query.SourceFilter gates traversal on it.
const projectSourceMarker = "__symbolreach_project_source__"

// Project owns one analyzed source tree: its shared graph, the fragment
// store backing it, and the registry of per-language source analyzers.
// Grounded on original_source/src/provider/csharp.rs's CSharpProvider,
// adapted from its tokio::sync::Mutex<Option<Arc<Project>>> guard into a
// plain Go struct with its own internal lock.
type Project struct {
	cfg       Config
	fs        afs.Service
	analyzers *sourceingest.Registry
	fragments *store.Store

	mu              sync.Mutex
	graph           *symgraph.Graph
	sourceMarkerSym symgraph.SymbolHandle
	sourceMarkerSet bool
}

// NewProject opens the fragment store at cfg.DBPath and returns a Project
// ready for BuildGraph.
func NewProject(cfg Config) (*Project, error) {
	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("service: open fragment store: %w", err)
	}
	return &Project{
		cfg:       cfg,
		fs:        afs.New(),
		analyzers: sourceingest.NewRegistry(golang.New(), java.New()),
		fragments: s,
	}, nil
}

// Close releases the project's fragment store.
func (p *Project) Close() error {
	return p.fragments.Close()
}

// installGraph atomically publishes g as the project's current graph. A
// panic during an in-progress rebuild never leaves readers blocked or the
// mutex held — the Go translation of the original's "clear poison and
// continue with the last good value" (Rust Mutex poisoning doesn't exist in
// Go, so there is nothing to clear; recover() just prevents a bad rebuild
// from corrupting the lock itself).
func (p *Project) installGraph(g *symgraph.Graph, markerSym symgraph.SymbolHandle) {
	defer func() { recover() }()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.graph = g
	p.sourceMarkerSym = markerSym
	p.sourceMarkerSet = true
}

// currentGraph returns the last successfully installed graph and its source
// marker symbol, holding the project lock only long enough to copy the
// pointer — mirroring evaluate's drop(project_guard) before querying.
func (p *Project) currentGraph() (*symgraph.Graph, symgraph.SymbolHandle, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.graph, p.sourceMarkerSym, p.sourceMarkerSet
}

// BuildGraph walks the project's source tree, analyzes every file whose
// extension has a registered sourceingest.Analyzer, tags each resulting
// CompUnit as project source, and installs the merged graph.
func (p *Project) BuildGraph(ctx context.Context) error {
	g := symgraph.New()
	marker := g.InternSymbol(projectSourceMarker)

	var walkErr error
	visitor := storage.OnVisit(func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		ext := strings.TrimPrefix(filepath.Ext(info.Name()), ".")
		analyzer, ok := p.analyzers.For(ext)
		if !ok {
			return true, nil
		}
		fileURL := url.Join(baseURL, parent, info.Name())
		src, err := p.fs.DownloadWithURL(ctx, fileURL)
		if err != nil {
			walkErr = fmt.Errorf("service: download %s: %w", fileURL, err)
			return false, walkErr
		}
		file := g.AddFile(fileURL)
		if err := analyzer.Analyze(ctx, g, file, fileURL, src); err != nil {
			Error("analyze %s: %v", fileURL, err)
			return true, nil
		}
		for _, n := range g.NodesInFile(file) {
			si, ok := g.SourceInfo(n)
			if ok && si.SyntaxType == symgraph.CompUnit {
				markerNode := g.AddNode(symgraph.WithFile(file), symgraph.WithSymbol(marker))
				g.AddEdge(markerNode, n, symgraph.Structural)
			}
		}
		return true, nil
	})

	if err := p.fs.Walk(ctx, p.cfg.Location, visitor); err != nil {
		return fmt.Errorf("service: walk %s: %w", p.cfg.Location, err)
	}
	if walkErr != nil {
		return walkErr
	}

	Info("built project graph for %s (%d nodes)", p.cfg.Location, g.NodeCount())
	p.installGraph(g, marker)
	return nil
}

// BuildDependencyFragments indexes each dependency documentation XML file in
// depFiles concurrently, caches each resulting fragment in the fragment
// store, then merges every fragment into the project's currently installed
// graph. Concurrency is a bounded worker pool sized to GOMAXPROCS, the
// teacher's own style of a plain buffered-channel semaphore rather than
// errgroup (see analyzer/analyzer.go's single-purpose helper functions).
func (p *Project) BuildDependencyFragments(ctx context.Context, depFiles []string) error {
	if p.cfg.Mode != ModeFull {
		return nil
	}

	type outcome struct {
		path string
		err  error
	}

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	results := make(chan outcome, len(depFiles))
	var wg sync.WaitGroup

	for _, path := range depFiles {
		wg.Add(1)
		sem <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results <- outcome{path: path, err: p.buildOneDependency(ctx, path)}
		}(path)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var firstErr error
	for r := range results {
		if r.err != nil {
			Error("index dependency %s: %v", r.path, r.err)
			if firstErr == nil {
				firstErr = r.err
			}
		}
	}
	if firstErr != nil {
		return firstErr
	}

	base, marker, ok := p.currentGraph()
	if !ok {
		return ErrNotInitialized
	}
	for _, path := range depFiles {
		tag, err := p.fragmentTag(ctx, path)
		if err != nil {
			continue
		}
		frag, found, err := p.fragments.LoadFragment(ctx, path, tag)
		if err != nil || !found {
			continue
		}
		symgraph.Merge(base, frag)
	}
	p.installGraph(base, marker)
	return nil
}

func (p *Project) buildOneDependency(ctx context.Context, path string) error {
	data, err := p.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return err
	}
	tag, err := store.ContentTag(data)
	if err != nil {
		return err
	}
	if _, found, err := p.fragments.LoadFragment(ctx, path, tag); err == nil && found {
		return nil
	}

	frag := symgraph.New()
	file := frag.AddFile(path)
	stats, err := depxml.Index(ctx, frag, file, path, strings.NewReader(string(data)))
	if err != nil {
		return err
	}
	Debug("indexed dependency %s: %+v", path, stats)
	return p.fragments.StoreFragment(ctx, path, tag, frag)
}

func (p *Project) fragmentTag(ctx context.Context, path string) (string, error) {
	data, err := p.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return "", err
	}
	return store.ContentTag(data)
}

// Query runs a reference search against the currently installed graph,
// gated to project-source files only when filterToSource is true.
func (p *Project) Query(kind query.Kind, pattern string, filterToSource bool) ([]query.Result, error) {
	g, marker, ok := p.currentGraph()
	if !ok {
		return nil, ErrNotInitialized
	}
	filter := query.SourceFilter{Symbol: marker, Enabled: filterToSource}
	return query.Query(g, kind, pattern, filter)
}
