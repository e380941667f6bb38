package cmd

import (
	"errors"
	"log/slog"
	"testing"
)

func TestErrorStringFormats(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"msg only", NewError("failed"), "failed"},
		{"msg and cause", NewError("failed").Wrap(errors.New("boom")), "failed: boom"},
		{"empty", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewError("failed").Wrap(cause)

	if got := errors.Unwrap(err); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
}

func TestErrorWithIsImmutable(t *testing.T) {
	base := NewError("failed")
	withAttrs := base.With(slog.String("key", "value"))

	if base == withAttrs {
		t.Fatal("With() mutated the receiver instead of returning a copy")
	}

	if len(base.attrs) != 0 {
		t.Errorf("base.attrs = %v, want empty", base.attrs)
	}

	if len(withAttrs.attrs) != 1 {
		t.Errorf("withAttrs.attrs = %v, want 1 entry", withAttrs.attrs)
	}
}

func TestErrorLogValue(t *testing.T) {
	err := NewError("failed").Wrap(errors.New("boom")).With(slog.String("entry", "expr"))

	v := err.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("LogValue().Kind() = %v, want Group", v.Kind())
	}

	attrs := v.Group()
	if len(attrs) != 3 {
		t.Fatalf("got %d attrs, want 3 (error, cause, entry)", len(attrs))
	}
}

func TestWrapPreservesSentinelMessage(t *testing.T) {
	wrapped := ErrParse.Wrap(errors.New("syntax error"))

	want := ErrParse.Error() + ": syntax error"
	if got := wrapped.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
