package repl

import "testing"

func TestIsWordBoundary(t *testing.T) {
	tests := []struct {
		r        rune
		boundary bool
	}{
		{' ', true},
		{'.', true},
		{'(', true},
		{'?', true},
		{'a', false},
		{'_', false},
		{'1', false},
	}

	for _, tt := range tests {
		if got := isWordBoundary(tt.r); got != tt.boundary {
			t.Errorf("isWordBoundary(%q) = %v, want %v", tt.r, got, tt.boundary)
		}
	}
}

func TestWordBounds(t *testing.T) {
	tests := []struct {
		input      string
		cursor     int
		wantWord   string
		wantStart  int
		wantEnd    int
	}{
		{"nu", 2, "nu", 0, 2},
		{"1 + nu", 6, "nu", 4, 6},
		{"$foo.ba", 7, "ba", 5, 7},
		{"", 0, "", 0, 0},
		{"true and fal", 12, "fal", 9, 12},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end, tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestComputeMatchesEvalMode(t *testing.T) {
	m := newModel(nil, "expr", NewHistory(""))
	m.input.SetValue("nu")
	m.input.SetCursor(2)

	matches, start, end := m.computeMatches()

	if len(matches) == 0 {
		t.Fatal("expected at least one match for \"nu\"")
	}

	if matches[0].Str != "null" {
		t.Errorf("best match = %q, want %q", matches[0].Str, "null")
	}

	if start != 0 || end != 2 {
		t.Errorf("bounds = (%d, %d), want (0, 2)", start, end)
	}
}

func TestComputeMatchesCtrlMode(t *testing.T) {
	m := newModel(nil, "expr", NewHistory(""))
	m.mode = modeCtrl
	m.input.SetValue("hel")
	m.input.SetCursor(3)

	matches, _, _ := m.computeMatches()

	if len(matches) == 0 || matches[0].Str != "help" {
		t.Fatalf("got %v, want best match \"help\"", matches)
	}
}

func TestComputeMatchesEmptyWordYieldsNoMatches(t *testing.T) {
	m := newModel(nil, "expr", NewHistory(""))
	m.input.SetValue("1 + ")
	m.input.SetCursor(4)

	matches, _, _ := m.computeMatches()

	if len(matches) != 0 {
		t.Errorf("got %v, want no matches for an empty word", matches)
	}
}
