package fixture_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mvlabs/exprc/fixture"
	"github.com/mvlabs/exprc/pkg"
)

const sampleYAML = `
cases:
  - name: simple addition
    entry: expr
    source: "1 + 2"
  - name: reserved ij as variable
    entry: var
    source: "$ij"
    want_error: true
  - name: dotted global
    entry: global
    source: "a.b.c"
  - name: expression list
    entry: exprlist
    source: "1, 2, 3"
  - name: malformed expression
    entry: expr
    source: "1 +"
    want_error: true
`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")

	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestLoad(t *testing.T) {
	path := writeFixture(t, sampleYAML)

	f, err := fixture.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(f.Cases) != 5 {
		t.Fatalf("got %d cases, want 5", len(f.Cases))
	}

	if f.Cases[0].Entry != fixture.Expr {
		t.Errorf("Cases[0].Entry = %v, want Expr", f.Cases[0].Entry)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := fixture.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFixture(t, "cases: [this is not a valid case list")

	_, err := fixture.Load(path)
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestRunReportsExpectedAndUnexpectedOutcomes(t *testing.T) {
	path := writeFixture(t, sampleYAML)

	f, err := fixture.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	results := fixture.Run(f)
	if len(results) != len(f.Cases) {
		t.Fatalf("got %d results, want %d", len(results), len(f.Cases))
	}

	for _, r := range results {
		if !r.Ok {
			t.Errorf("case %q: outcome did not match want_error=%v (err=%v)",
				r.Case.Name, r.Case.WantErr, r.Err)
		}
	}
}

func TestRunFlagsMismatchedExpectation(t *testing.T) {
	f := &fixture.File{Cases: []fixture.Case{
		{Name: "should fail but doesn't", Entry: fixture.Expr, Source: "1 + 2", WantErr: true},
	}}

	results := fixture.Run(f)

	if results[0].Ok {
		t.Errorf("expected Ok=false for a case whose expectation was violated")
	}
}

func TestRunUnknownEntryReportsPkgSentinel(t *testing.T) {
	f := &fixture.File{Cases: []fixture.Case{
		{Name: "bogus entry", Entry: fixture.Entry("bogus"), Source: "1", WantErr: true},
	}}

	results := fixture.Run(f)

	if !results[0].Ok {
		t.Fatalf("expected want_error=true to match an unknown-entry failure, got %v", results[0].Err)
	}

	if !errors.Is(results[0].Err, pkg.ErrUnknownEntry[0]) {
		t.Errorf("err = %v, want chain to contain pkg.ErrUnknownEntry", results[0].Err)
	}
}

func TestRunEachEntryPoint(t *testing.T) {
	f := &fixture.File{Cases: []fixture.Case{
		{Name: "expr", Entry: fixture.Expr, Source: "1"},
		{Name: "exprlist", Entry: fixture.ExprList, Source: "1, 2"},
		{Name: "var", Entry: fixture.Var, Source: "$x"},
		{Name: "dataref", Entry: fixture.DataRef, Source: "$x.y"},
		{Name: "global", Entry: fixture.Global, Source: "x.y"},
	}}

	for _, r := range fixture.Run(f) {
		if !r.Ok {
			t.Errorf("case %q failed unexpectedly: %v", r.Case.Name, r.Err)
		}
	}
}
