package lexer

import (
	"log/slog"
	"strconv"
)

// ErrorKind classifies why the lexer rejected an input.
type ErrorKind int

const (
	UnterminatedString ErrorKind = iota
	BadEscape
	BadNumber
	UnexpectedChar
)

var errorKindName = map[ErrorKind]string{
	UnterminatedString: "unterminated_string",
	BadEscape:          "bad_escape",
	BadNumber:          "bad_number",
	UnexpectedChar:     "unexpected_char",
}

// String returns the kind's deterministic, locale-independent name.
func (k ErrorKind) String() string {
	if s, ok := errorKindName[k]; ok {
		return s
	}

	return "unknown"
}

// Error reports a lexical failure at a byte offset into the source text.
// It is one of exactly two error types the parsing path produces; see
// [github.com/mvlabs/exprc/parser.Error] for the other.
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
