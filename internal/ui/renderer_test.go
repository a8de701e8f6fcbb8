package ui

import "testing"

func TestFormatScore_FullNames(t *testing.T) {
	got := FormatScore("PLAYER 1", "PLAYER 2", 3, 2, 80)
	want := "[ PLAYER 1 3 - 2 PLAYER 2 ]"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatScore_NarrowDropsNames(t *testing.T) {
	got := FormatScore("PLAYER 1", "PLAYER 2", 3, 2, 10)
	if got != "3 - 2" {
		t.Errorf("expected bare scores %q, got %q", "3 - 2", got)
	}
}

func TestFormatScore_TinyShowsPlaceholder(t *testing.T) {
	got := FormatScore("PLAYER 1", "PLAYER 2", 3, 2, 3)
	if got != "-" {
		t.Errorf("expected placeholder %q, got %q", "-", got)
	}
}

func TestFormatScore_ExactFit(t *testing.T) {
	full := "[ A 0 - 0 B ]"
	if got := FormatScore("A", "B", 0, 0, len(full)); got != full {
		t.Errorf("expected full board at exact width, got %q", got)
	}
	if got := FormatScore("A", "B", 0, 0, len(full)-1); got != "0 - 0" {
		t.Errorf("expected fallback one cell short, got %q", got)
	}
}

func TestFormatScore_WideRunes(t *testing.T) {
	// Names with double-width runes must be measured in cells, not
	// runes: "ポン" is two runes but four cells.
	full := FormatScore("ポン", "ポン", 0, 0, 80)
	width := MeasureText(full)

	if got := FormatScore("ポン", "ポン", 0, 0, width); got != full {
		t.Errorf("expected full board at width %d, got %q", width, got)
	}
	if got := FormatScore("ポン", "ポン", 0, 0, width-1); got != "0 - 0" {
		t.Errorf("expected fallback below width %d, got %q", width, got)
	}
}

func TestMeasureText(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"3 - 2", 5},
		{"ポン", 4},
	}

	for _, tt := range tests {
		if got := MeasureText(tt.text); got != tt.want {
			t.Errorf("MeasureText(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
