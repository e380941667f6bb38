package parser

import (
	"log/slog"
	"strconv"
)

// ErrorKind classifies a parse-level failure.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	ExpectedToken
	ReservedIJ
	DisallowedMapKey
	TrailingInput
)

var errorKindName = map[ErrorKind]string{
	UnexpectedToken:  "unexpected_token",
	ExpectedToken:    "expected_X",
	ReservedIJ:       "reserved_ij",
	DisallowedMapKey: "disallowed_map_key",
	TrailingInput:    "trailing_input",
}

// String returns the kind's deterministic, locale-independent name.
func (k ErrorKind) String() string {
	if s, ok := errorKindName[k]; ok {
		return s
	}

	return "unknown"
}

// Error reports a grammar-level failure at the offset of the lookahead
// token that triggered it. It is one of exactly two error types the
// parsing path produces; see [github.com/mvlabs/exprc/lexer.Error] for the
// other.
type Error struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func newError(kind ErrorKind, offset int, message string) *Error {
	return &Error{Kind: kind, Offset: offset, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Kind.String() + " at offset " + strconv.Itoa(e.Offset) + ": " + e.Message
}

// LogValue implements slog.LogValuer for structured logging.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", e.Kind.String()),
		slog.Int("offset", e.Offset),
		slog.String("message", e.Message),
	)
}
