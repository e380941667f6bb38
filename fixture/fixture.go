// Package fixture loads named expression-language test fixtures from YAML,
// for batch validation against the parser's entry points (the "exprc
// check" command). It performs no semantic interpretation of the parsed
// expressions — only whether each fixture parses, or fails, as declared.
package fixture

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/mvlabs/exprc/ast"
	"github.com/mvlabs/exprc/parser"
	"github.com/mvlabs/exprc/pkg"
)

// Entry selects which parser entry point a fixture's Source is parsed
// with.
type Entry string

const (
	Expr       Entry = "expr"
	ExprList   Entry = "exprlist"
	Var        Entry = "var"
	DataRef    Entry = "dataref"
	Global     Entry = "global"
)

// Case is one named fixture: a source string, the entry point to parse it
// with, and whether it is expected to parse successfully.
type Case struct {
	Name    string `yaml:"name"`
	Entry   Entry  `yaml:"entry"`
	Source  string `yaml:"source"`
	WantErr bool   `yaml:"want_error"`
}

// File is the top-level shape of a fixture YAML document.
type File struct {
	Cases []Case `yaml:"cases"`
}

// Load reads and decodes a fixture file from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}

	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixture file: %w", err)
	}

	return &f, nil
}

// Result is the outcome of running one Case.
type Result struct {
	Case Case
	Err  error
	Ok   bool // true if the outcome matched Case.WantErr
}

// Run parses every case against the entry point it names and reports
// whether the outcome (success or failure) matched what the fixture
// declared. The kind of error is not compared.
func Run(f *File) []Result {
	results := make([]Result, 0, len(f.Cases))

	for _, c := range f.Cases {
		_, err := parseEntry(c.Entry, c.Source)

		results = append(results, Result{
			Case: c,
			Err:  err,
			Ok:   (err != nil) == c.WantErr,
		})
	}

	return results
}

func parseEntry(entry Entry, source string) (any, error) {
	switch entry {
	case Expr, "":
		return noAny(parser.ParseExpression(source))
	case ExprList:
		return parser.ParseExpressionList(source)
	case Var:
		return noAny(parser.ParseVariable(source))
	case DataRef:
		return noAny(parser.ParseDataReference(source))
	case Global:
		return noAny(parser.ParseGlobal(source))
	default:
		return nil, pkg.ErrUnknownEntry.Wrapf("entry %q", entry)
	}
}

func noAny(r *ast.Root, err error) (any, error) { return r, err }
