package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/LandaMm/PL-interpreter/internal/builtins"
	"github.com/LandaMm/PL-interpreter/internal/evaluator"
	"github.com/LandaMm/PL-interpreter/internal/lexer"
	"github.com/LandaMm/PL-interpreter/internal/parser"
	"github.com/LandaMm/PL-interpreter/internal/runtime"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain drains go-snaps' obsolete-snapshot tracking, matching the
// package-level Cleanup call every go-snaps consumer needs.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// runFixture parses and evaluates a fixture file the same way runScript
// does, returning whatever print() wrote.
func runFixture(t *testing.T, path string) string {
	t.Helper()
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	prog, err := parser.New(lexer.New(string(src))).ParseProgram()
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	store, root := runtime.NewStore()
	var out bytes.Buffer
	if err := builtins.Bootstrap(store, root, &out); err != nil {
		t.Fatalf("bootstrap error: %v", err)
	}
	if _, err := evaluator.New(store).RunProgram(prog, root); err != nil {
		t.Fatalf("evaluating %s: %v", path, err)
	}
	return out.String()
}

// TestFixtureScripts runs every *.amr fixture under testdata/fixtures and
// snapshots its printed output.
func TestFixtureScripts(t *testing.T) {
	files, err := filepath.Glob("../../../testdata/fixtures/*.amr")
	if err != nil {
		t.Fatalf("globbing fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range files {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			out := runFixture(t, path)
			snaps.MatchSnapshot(t, name, out)
		})
	}
}

func TestDefaultScriptRuns(t *testing.T) {
	out := runFixture(t, "../../../"+defaultScript)
	snaps.MatchSnapshot(t, out)
}
