package cmd

import (
	"context"

	replui "github.com/mvlabs/exprc/cli/repl"
)

// Repl starts an interactive read-parse-print loop. Each line typed is
// parsed with the entry point selected by --entry (the expression entry
// point by default) and its AST is printed; nothing is ever evaluated.
type Repl struct {
	Entry string `default:"expr" enum:"expr,var,dataref,global" help:"Parser entry point to use." short:"e"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	name := "exprc"
	if ktx := KongContext(ctx); ktx != nil {
		name = ktx.Model.Name
	}

	return replui.Run(ctx, name, r.Entry)
}
