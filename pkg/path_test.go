package pkg

import (
	"strings"
	"testing"
)

func TestPrefixIsNonEmpty(t *testing.T) {
	if Prefix() == "" {
		t.Error("Prefix() returned an empty string")
	}
}

func TestPrefixIsMemoized(t *testing.T) {
	if Prefix() != Prefix() {
		t.Error("Prefix() returned different values across calls")
	}
}

func TestConfigDirEndsInPrefix(t *testing.T) {
	dir := ConfigDir()
	if !strings.HasSuffix(dir, Prefix()) {
		t.Errorf("ConfigDir() = %q, want suffix %q", dir, Prefix())
	}
}

func TestCacheDirEndsInPrefix(t *testing.T) {
	dir := CacheDir()
	if !strings.HasSuffix(dir, Prefix()) {
		t.Errorf("CacheDir() = %q, want suffix %q", dir, Prefix())
	}
}
