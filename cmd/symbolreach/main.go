// Command symbolreach is a minimal example binary that builds a project
// graph over a directory and runs a single reference query against it,
// wiring sourceingest (Go and Java) + store + query end to end; it does not
// index dependency documentation XML. It
// mirrors inspector/coder/example/main.go's shape: a small, narrated main
// demonstrating the library, not a CLI framework (flag, not cobra, matching
// the teacher's own choice not to pull in a CLI library here).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/symbolreach/query"
	"github.com/viant/symbolreach/service"
)

func main() {
	var (
		location   = flag.String("dir", ".", "project source directory to analyze")
		dbPath     = flag.String("db", "", "fragment cache SQLite path (defaults to <dir>/.symbolreach.db)")
		pattern    = flag.String("pattern", "", "dotted pattern to search for, e.g. System.Configuration.*")
		queryLoc   = flag.String("location", "ALL", "ALL, METHOD, FIELD, or CLASS")
		sourceOnly = flag.Bool("source-only", false, "restrict results to project source files")
	)
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: symbolreach -dir <path> -pattern <dotted.pattern> [-location ALL|METHOD|FIELD|CLASS]")
		os.Exit(2)
	}

	if proj, err := service.DetectProjectRoot(*location); err == nil {
		fmt.Printf("detected %s project %q rooted at %s\n", proj.Type, proj.Name, proj.RootPath)
		if !proj.Analyzable {
			fmt.Printf("warning: sourceingest has no analyzer for %q; only .go and .java files will be indexed\n", proj.Type)
		}
	}

	cfg := service.DefaultConfig()
	cfg.Location = *location
	if *dbPath == "" {
		cfg.DBPath = filepath.Join(*location, ".symbolreach.db")
	} else {
		cfg.DBPath = *dbPath
	}

	project, err := service.NewProject(*cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening project: %v\n", err)
		os.Exit(1)
	}
	defer project.Close()

	ctx := context.Background()
	fmt.Printf("building graph for %s\n", cfg.Location)
	if err := project.BuildGraph(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error building graph: %v\n", err)
		os.Exit(1)
	}

	conditionYAML := fmt.Sprintf("referenced:\n  pattern: %s\n  location: %s\n", *pattern, *queryLoc)
	resp, err := project.Evaluate(service.EvaluateRequest{
		Capability:    "referenced",
		ConditionYAML: conditionYAML,
		SourceOnly:    *sourceOnly,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error evaluating: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("matched: %v\n", resp.Matched)
	printResults(resp.Results)
}

func printResults(results []query.Result) {
	for _, r := range results {
		fmt.Printf("%s:%d  %s  %s\n", r.FileURI, r.LineNumber, r.SyntaxType, r.Symbol)
	}
	fmt.Printf("%d result(s)\n", len(results))
}
