package token_test

import (
	"testing"

	"github.com/mvlabs/exprc/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.EOF, "EOF"},
		{token.PLUS, "+"},
		{token.DOLLAR_IJ_DOT, "$ij."},
		{token.NOT, "not"},
		{token.Kind(999), "Kind(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		text    string
		want    token.Kind
		matched bool
	}{
		{"null", token.NULL, true},
		{"true", token.BOOLEAN, true},
		{"false", token.BOOLEAN, true},
		{"not", token.NOT, true},
		{"and", token.AND, true},
		{"or", token.OR, true},
		{"null_", 0, false},
		{"nullable", 0, false},
		{"ij", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := token.Keyword(tt.text)
			if ok != tt.matched {
				t.Fatalf("Keyword(%q) matched = %v, want %v", tt.text, ok, tt.matched)
			}

			if ok && got != tt.want {
				t.Errorf("Keyword(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSpanJoin(t *testing.T) {
	a := token.Span{Start: 2, End: 5}
	b := token.Span{Start: 0, End: 3}

	got := a.Join(b)
	want := token.Span{Start: 0, End: 5}

	if got != want {
		t.Errorf("Join() = %+v, want %+v", got, want)
	}
}

func TestTokenOffset(t *testing.T) {
	tok := token.Token{Kind: token.IDENT, Text: "foo", Span: token.Span{Start: 7, End: 10}}

	if got := tok.Offset(); got != 7 {
		t.Errorf("Offset() = %d, want 7", got)
	}
}
