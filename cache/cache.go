// Package cache memoizes parser entry-point results keyed by source text,
// mirroring how a template compiler re-parses the same handful of
// expression strings across many call sites. It adds no semantics beyond
// what [github.com/mvlabs/exprc/parser] already defines; a cache miss and
// a cache hit always produce identical ASTs for the same input.
package cache

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/mvlabs/exprc/ast"
	"github.com/mvlabs/exprc/log"
	"github.com/mvlabs/exprc/parser"
)

// Kind selects which parser entry point a cached source string is parsed
// with.
type Kind int

const (
	Expression Kind = iota
	Variable
	DataReference
	Global
)

var entries sync.Map // cacheKey(string) -> *state

type state struct {
	once sync.Once
	root *ast.Root
	err  error
}

func cacheKey(kind Kind, source string) string {
	h := xxh3.HashString(source)

	return strconv.FormatUint(h, 36) + ":" + strconv.Itoa(int(kind))
}

// Parse parses source with the entry point selected by kind, memoizing the
// result so repeated calls with the same (kind, source) pair reuse the
// first parse.
func Parse(kind Kind, source string) (*ast.Root, error) {
	key := cacheKey(kind, source)

	value, hit := entries.LoadOrStore(key, &state{})
	st := value.(*state)

	st.once.Do(func() {
		st.root, st.err = parseOnce(kind, source)

		log.Trace(
			"parse cached",
			slog.Int("kind", int(kind)),
			slog.Bool("cache_hit", hit),
		)
	})

	return st.root, st.err
}

func parseOnce(kind Kind, source string) (*ast.Root, error) {
	switch kind {
	case Variable:
		return parser.ParseVariable(source)
	case DataReference:
		return parser.ParseDataReference(source)
	case Global:
		return parser.ParseGlobal(source)
	default:
		return parser.ParseExpression(source)
	}
}

// ParseReader reads r to completion using an async read-ahead wrapper and
// caches the result the same as [Parse].
func ParseReader(_ context.Context, kind Kind, r io.Reader) (*ast.Root, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, err
	}

	return Parse(kind, string(data))
}

// Clear removes every cached entry. Intended for tests and long-running
// processes that want to reclaim memory between batches.
func Clear() {
	entries = sync.Map{}
}
