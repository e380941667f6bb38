package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/mvlabs/exprc/pkg"
)

func TestReadSourcePrefersText(t *testing.T) {
	got, err := readSource("1 + 2", "/does/not/exist")
	if err != nil {
		t.Fatalf("readSource: %v", err)
	}

	if got != "1 + 2" {
		t.Errorf("readSource() = %q, want %q", got, "1 + 2")
	}
}

func TestReadSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.txt")

	if err := os.WriteFile(path, []byte("$foo"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := readSource("", path)
	if err != nil {
		t.Fatalf("readSource: %v", err)
	}

	if got != "$foo" {
		t.Errorf("readSource() = %q, want %q", got, "$foo")
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	_, err := readSource("", filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}

	if !errors.Is(err, pkg.ErrReadInput[0]) {
		t.Errorf("err = %v, want chain to contain pkg.ErrReadInput", err)
	}
}

func TestWithContextAndKongContext(t *testing.T) {
	if got := KongContext(context.Background()); got != nil {
		t.Fatalf("KongContext() on bare context = %v, want nil", got)
	}

	ktx := &kong.Context{}
	ctx := WithContext(context.Background(), ktx)

	if got := KongContext(ctx); got != ktx {
		t.Errorf("KongContext() = %v, want %v", got, ktx)
	}
}
