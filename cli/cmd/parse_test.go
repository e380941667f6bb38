package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/mvlabs/exprc/pkg"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = orig

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	return string(out)
}

func TestParseRunExpression(t *testing.T) {
	p := &Parse{Entry: "expr", Text: "1 + 2"}

	var runErr error

	out := captureStdout(t, func() {
		runErr = p.Run(context.Background())
	})

	if runErr != nil {
		t.Fatalf("Run: %v", runErr)
	}

	if !strings.Contains(out, "Add") {
		t.Errorf("output %q does not contain Add", out)
	}
}

func TestParseRunExprList(t *testing.T) {
	p := &Parse{Entry: "exprlist", Text: "1, 2"}

	var runErr error

	out := captureStdout(t, func() {
		runErr = p.Run(context.Background())
	})

	if runErr != nil {
		t.Fatalf("Run: %v", runErr)
	}

	if !strings.Contains(out, "--- expression 0 ---") || !strings.Contains(out, "--- expression 1 ---") {
		t.Errorf("output %q missing expected expression headers", out)
	}
}

func TestParseRunVariable(t *testing.T) {
	p := &Parse{Entry: "var", Text: "$foo"}

	var runErr error

	out := captureStdout(t, func() {
		runErr = p.Run(context.Background())
	})

	if runErr != nil {
		t.Fatalf("Run: %v", runErr)
	}

	if !strings.Contains(out, "Var(foo)") {
		t.Errorf("output %q does not contain Var(foo)", out)
	}
}

func TestParseRunParseErrorWraps(t *testing.T) {
	p := &Parse{Entry: "expr", Text: "1 +"}

	var runErr error

	captureStdout(t, func() {
		runErr = p.Run(context.Background())
	})

	if runErr == nil {
		t.Fatal("expected parse error, got nil")
	}

	if !strings.Contains(runErr.Error(), ErrParse.Error()) {
		t.Errorf("error %q does not wrap ErrParse", runErr)
	}

	if !errors.Is(runErr, pkg.ErrParse[0]) {
		t.Errorf("error %v does not carry pkg.ErrParse in its chain", runErr)
	}
}

func TestParseRunReadsFromSourceFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/expr.txt"

	if err := os.WriteFile(path, []byte("1 + 2"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := &Parse{Entry: "expr", Source: path}

	var runErr error

	out := captureStdout(t, func() {
		runErr = p.Run(context.Background())
	})

	if runErr != nil {
		t.Fatalf("Run: %v", runErr)
	}

	if !strings.Contains(out, "Add") {
		t.Errorf("output %q does not contain Add", out)
	}
}

func TestEntryKindMapping(t *testing.T) {
	tests := []struct {
		entry string
		kind  int
	}{
		{"expr", 0},
		{"var", 1},
		{"dataref", 2},
		{"global", 3},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			if got := int(entryKind(tt.entry)); got != tt.kind {
				t.Errorf("entryKind(%q) = %d, want %d", tt.entry, got, tt.kind)
			}
		})
	}

	if entryKind("exprlist") != exprListKind {
		t.Errorf("entryKind(exprlist) did not return exprListKind")
	}
}
