package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mvlabs/exprc/pkg"
)

func writeFixtureFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cases.yaml")

	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestCheckRunAllPass(t *testing.T) {
	path := writeFixtureFile(t, `
cases:
  - name: addition
    entry: expr
    source: "1 + 2"
  - name: reserved ij
    entry: var
    source: "$ij"
    want_error: true
`)

	c := &Check{File: path, Quiet: true}

	var runErr error

	out := captureStdout(t, func() {
		runErr = c.Run(context.Background())
	})

	if runErr != nil {
		t.Fatalf("Run: %v", runErr)
	}

	if !strings.Contains(out, "2/2 cases passed") {
		t.Errorf("output %q does not report 2/2 cases passed", out)
	}
}

func TestCheckRunReportsFailures(t *testing.T) {
	path := writeFixtureFile(t, `
cases:
  - name: should have failed
    entry: expr
    source: "1 + 2"
    want_error: true
`)

	c := &Check{File: path}

	var runErr error

	out := captureStdout(t, func() {
		runErr = c.Run(context.Background())
	})

	if runErr == nil {
		t.Fatal("expected error from Run, got nil")
	}

	if !strings.Contains(out, "FAIL should have failed") {
		t.Errorf("output %q does not contain failure line", out)
	}

	if !errors.Is(runErr, pkg.ErrFixtureFailed[0]) {
		t.Errorf("err = %v, want chain to contain pkg.ErrFixtureFailed", runErr)
	}
}

func TestCheckRunMissingFile(t *testing.T) {
	c := &Check{File: filepath.Join(t.TempDir(), "missing.yaml")}

	var runErr error

	captureStdout(t, func() {
		runErr = c.Run(context.Background())
	})

	if runErr == nil {
		t.Fatal("expected error for missing fixture file, got nil")
	}

	if !strings.Contains(runErr.Error(), ErrLoadFixtures.Error()) {
		t.Errorf("error %q does not wrap ErrLoadFixtures", runErr)
	}
}

func TestCheckRunQuietSuppressesPassingLines(t *testing.T) {
	path := writeFixtureFile(t, `
cases:
  - name: addition
    entry: expr
    source: "1 + 2"
`)

	c := &Check{File: path, Quiet: true}

	var runErr error

	out := captureStdout(t, func() {
		runErr = c.Run(context.Background())
	})

	if runErr != nil {
		t.Fatalf("Run: %v", runErr)
	}

	if strings.Contains(out, "ok   addition") {
		t.Errorf("output %q contains a passing-case line despite Quiet", out)
	}
}
