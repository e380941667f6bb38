package cmd

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mvlabs/exprc/pkg"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
// Subcommands retrieve it with [KongContext]; the repl subcommand reads the
// application name from it.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

// KongContext retrieves the [kong.Context] stored by [WithContext].
func KongContext(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSource returns the expression source text for a command. If text is
// non-empty it is used verbatim; otherwise the source named by file (or
// stdin, when file is "-" or empty) is read in full.
func readSource(text, file string) (string, error) {
	if text != "" {
		return text, nil
	}

	var (
		r      io.Reader
		source = file
	)

	switch file {
	case "", stdinSource:
		source = stdinSource
		r = bufio.NewReader(os.Stdin)
	default:
		f, err := os.Open(file)
		if err != nil {
			return "", pkg.ErrReadInput.Wrapf("%s: %w", source, err)
		}
		defer f.Close()

		r = bufio.NewReader(f)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", pkg.ErrReadInput.Wrapf("%s: %w", source, err)
	}

	return string(data), nil
}
