package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mvlabs/exprc/ast"
	"github.com/mvlabs/exprc/cache"
	"github.com/mvlabs/exprc/log"
	"github.com/mvlabs/exprc/parser"
	"github.com/mvlabs/exprc/pkg"
)

// Parse parses a single expression-language source string with a chosen
// parser entry point and prints the resulting AST.
type Parse struct {
	Entry string `default:"expr" enum:"expr,exprlist,var,dataref,global" help:"Parser entry point to use." short:"e"`
	Text  string `arg:""          help:"Expression source text. Reads from Source/stdin when omitted." name:"text" optional:""`
	Source string `                help:"Source input file or '-' for stdin, used when text is omitted." short:"f"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) error {
	text, err := readSource(p.Text, p.Source)
	if err != nil {
		return ErrReadSource.Wrap(err)
	}

	kind := entryKind(p.Entry)

	if kind == exprListKind {
		roots, err := parseList(text)
		if err != nil {
			log.ErrorContext(ctx, "parse failed",
				slog.String("entry", p.Entry),
				slog.Any("error", err),
			)

			return ErrParse.Wrap(pkg.ErrParse.Wrap(err)).With(slog.String("entry", p.Entry))
		}

		for i, root := range roots {
			fmt.Fprintf(os.Stdout, "--- expression %d ---\n", i)
			ast.PrintRoot(os.Stdout, root)
		}

		return nil
	}

	root, err := cache.Parse(kind, text)
	if err != nil {
		log.ErrorContext(ctx, "parse failed",
			slog.String("entry", p.Entry),
			slog.Any("error", err),
		)

		return ErrParse.Wrap(pkg.ErrParse.Wrap(err)).With(slog.String("entry", p.Entry))
	}

	ast.PrintRoot(os.Stdout, root)

	return nil
}

// exprListKind is a sentinel cache.Kind value used only to route parse
// requests naming the "exprlist" entry, which cache.Parse does not itself
// support (it has no single-root result to memoize).
const exprListKind cache.Kind = -1

func parseList(text string) ([]*ast.Root, error) {
	return parser.ParseExpressionList(text)
}

func entryKind(entry string) cache.Kind {
	switch entry {
	case "exprlist":
		return exprListKind
	case "var":
		return cache.Variable
	case "dataref":
		return cache.DataReference
	case "global":
		return cache.Global
	default:
		return cache.Expression
	}
}
