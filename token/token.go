// Package token defines the lexical token kinds and source-span types
// shared by the lexer and parser.
package token

import "fmt"

// Kind classifies a lexeme produced by the lexer.
type Kind int

const (
	EOF Kind = iota

	NULL
	BOOLEAN
	INTEGER
	FLOAT
	STRING
	IDENT
	DOLLAR_IDENT
	DOT_IDENT
	DOT_INDEX

	// Punctuation.
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	COMMA
	COLON
	QUESTION
	DOLLAR_IJ_DOT

	// Operators.
	MINUS
	PLUS
	STAR
	SLASH
	PERCENT
	LT
	GT
	LE
	GE
	EQ
	NE
	NOT
	AND
	OR
)

var kindName = map[Kind]string{
	EOF:           "EOF",
	NULL:          "NULL",
	BOOLEAN:       "BOOLEAN",
	INTEGER:       "INTEGER",
	FLOAT:         "FLOAT",
	STRING:        "STRING",
	IDENT:         "IDENT",
	DOLLAR_IDENT:  "DOLLAR_IDENT",
	DOT_IDENT:     "DOT_IDENT",
	DOT_INDEX:     "DOT_INDEX",
	LPAREN:        "(",
	RPAREN:        ")",
	LBRACKET:      "[",
	RBRACKET:      "]",
	COMMA:         ",",
	COLON:         ":",
	QUESTION:      "?",
	DOLLAR_IJ_DOT: "$ij.",
	MINUS:         "-",
	PLUS:          "+",
	STAR:          "*",
	SLASH:         "/",
	PERCENT:       "%",
	LT:            "<",
	GT:            ">",
	LE:            "<=",
	GE:            ">=",
	EQ:            "==",
	NE:            "!=",
	NOT:           "not",
	AND:           "and",
	OR:            "or",
}

// String returns the canonical display name of k.
func (k Kind) String() string {
	if s, ok := kindName[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// keyword maps a maximal identifier match to its reserved keyword kind.
// null, true, false, not, and, or are recognized only as maximal matches;
// "null_" remains an IDENT.
var keyword = map[string]Kind{
	"null":  NULL,
	"true":  BOOLEAN,
	"false": BOOLEAN,
	"not":   NOT,
	"and":   AND,
	"or":    OR,
}

// Keyword reports whether text is a reserved keyword, returning its kind.
func Keyword(text string) (Kind, bool) {
	k, ok := keyword[text]

	return k, ok
}

// Span is a contiguous, half-open byte-offset range [Start, End) into the
// original source text.
type Span struct {
	Start int
	End   int
}

// Join returns the smallest span containing both a and b.
func (a Span) Join(b Span) Span {
	s := a

	if b.Start < s.Start {
		s.Start = b.Start
	}

	if b.End > s.End {
		s.End = b.End
	}

	return s
}

// Token is a single classified lexeme with its source span.
type Token struct {
	Kind Kind
	Text string
	Span Span
}

// Offset returns the byte offset of the token's first byte, used when
// reporting parse errors against the lookahead token.
func (t Token) Offset() int { return t.Span.Start }
