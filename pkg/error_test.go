package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestMakeErrorOrdersInnermostFirst(t *testing.T) {
	inner := errors.New("inner")
	outer := fmt.Errorf("outer: %w", inner)

	e := MakeError(outer)

	if len(e) != 2 {
		t.Fatalf("got %d errors in chain, want 2", len(e))
	}

	if e[0] != inner {
		t.Errorf("e[0] = %v, want inner", e[0])
	}

	if e[1] != outer {
		t.Errorf("e[1] = %v, want outer", e[1])
	}
}

func TestMakeErrorSkipsNil(t *testing.T) {
	e := MakeError(nil, errors.New("real"), nil)

	if len(e) != 1 {
		t.Fatalf("got %d errors, want 1", len(e))
	}
}

func TestMakeErrorEmpty(t *testing.T) {
	if e := MakeError(); e != nil {
		t.Errorf("MakeError() with no args = %v, want nil", e)
	}
}

func TestErrorStringJoinsWithColon(t *testing.T) {
	e := Error{errors.New("a"), errors.New("b")}

	want := "a: b"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapAppends(t *testing.T) {
	base := MakeErrorf("base")
	wrapped := base.Wrap(errors.New("extra"))

	if len(wrapped) != 2 {
		t.Fatalf("got %d errors, want 2", len(wrapped))
	}

	if wrapped.Error() != "base: extra" {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), "base: extra")
	}
}

func TestWrapfAppendsFormatted(t *testing.T) {
	base := MakeErrorf("base")
	wrapped := base.Wrapf("detail %d", 42)

	want := "base: detail 42"
	if got := wrapped.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUnwrapReturnsSlice(t *testing.T) {
	e := Error{errors.New("a"), errors.New("b")}

	got := e.Unwrap()
	if len(got) != 2 {
		t.Fatalf("got %d errors, want 2", len(got))
	}
}

func TestUnwrapErrorsFlattensChain(t *testing.T) {
	inner := errors.New("inner")
	mid := fmt.Errorf("mid: %w", inner)
	outer := fmt.Errorf("outer: %w", mid)

	chain := UnwrapErrors(outer)

	if len(chain) != 3 {
		t.Fatalf("got %d errors in chain, want 3", len(chain))
	}

	if chain[0] != inner || chain[2] != outer {
		t.Errorf("chain = %v, want [inner mid outer]", chain)
	}
}

func TestUnwrapErrorsNil(t *testing.T) {
	if chain := UnwrapErrors(nil); chain != nil {
		t.Errorf("UnwrapErrors(nil) = %v, want nil", chain)
	}
}

func TestErrorsIsMatchesSentinel(t *testing.T) {
	wrapped := ErrParse.Wrap(errors.New("syntax error"))

	if !errors.Is(wrapped, ErrParse[0]) {
		t.Error("errors.Is() did not match the sentinel in the chain")
	}
}
