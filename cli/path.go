package cli

import (
	"os"

	"github.com/mvlabs/exprc/pkg"
)

// defaultDirMode is the permission mode for created runtime directories.
var defaultDirMode os.FileMode = 0o700

// mkdirAllRequired creates the runtime directories exprc needs: its
// configuration directory and its cache directory (profile output and the
// REPL history both live under the latter).
func mkdirAllRequired() error {
	if err := os.MkdirAll(pkg.ConfigDir(), defaultDirMode); err != nil {
		return err
	}

	return os.MkdirAll(pkg.CacheDir(), defaultDirMode)
}
