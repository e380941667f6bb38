package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mvlabs/exprc/fixture"
	"github.com/mvlabs/exprc/log"
	"github.com/mvlabs/exprc/pkg"
)

// Check loads a YAML fixture file and reports whether each case's parse
// outcome matched what the fixture declared.
type Check struct {
	File string `arg:"" help:"Fixture YAML file" name:"file" type:"existingfile"`
	Quiet bool  `help:"Only print failing cases" short:"q"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	f, err := fixture.Load(c.File)
	if err != nil {
		log.ErrorContext(ctx, "load fixture file failed", slog.Any("error", err))

		return ErrLoadFixtures.Wrap(err).With(slog.String("file", c.File))
	}

	results := fixture.Run(f)

	failed := 0

	for _, r := range results {
		if r.Ok {
			if !c.Quiet {
				fmt.Fprintf(os.Stdout, "ok   %s\n", r.Case.Name)
			}

			continue
		}

		failed++

		fmt.Fprintf(os.Stdout, "FAIL %s: got error=%v, want_error=%v\n",
			r.Case.Name, r.Err, r.Case.WantErr)
	}

	fmt.Fprintf(os.Stdout, "%d/%d cases passed\n", len(results)-failed, len(results))

	if failed > 0 {
		return NewError("check failed").
			Wrap(pkg.ErrFixtureFailed.Wrapf("%d/%d fixture case(s) failed", failed, len(results)))
	}

	return nil
}
