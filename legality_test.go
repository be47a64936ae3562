package linebreak

import (
	"math"
	"testing"
)

func paragraph() []Item {
	return []Item{
		NewBox(10),                          // 0
		NewGlue(5, 3, 2),                     // 1: legal (after box)
		NewBox(10),                           // 2
		NewPenalty(5, 50, true),              // 3: legal, flagged
		NewBox(10),                           // 4
		NewGlue(5, 3, 2),                     // 5: legal (after box)
		NewBox(10),                           // 6
		NewPenalty(0, math.Inf(1), false),    // 7: never legal
		NewBox(10),                           // 8
		NewPenalty(0, math.Inf(-1), false),   // 9: forced, legal
	}
}

func TestIsLegalBreak(t *testing.T) {
	items := paragraph()
	tests := map[int]bool{
		0: false, 1: true, 2: false, 3: true, 4: false,
		5: true, 6: false, 7: false, 8: false, 9: true,
	}
	for i, want := range tests {
		if got := isLegalBreak(items, i); got != want {
			t.Errorf("isLegalBreak(items, %d) = %v, want %v", i, got, want)
		}
	}
}

func TestIsForcedBreak(t *testing.T) {
	items := paragraph()
	if isForcedBreak(items, 3) {
		t.Error("finite penalty should not be forced")
	}
	if !isForcedBreak(items, 9) {
		t.Error("p = -Inf penalty should be forced")
	}
}

func TestAfter(t *testing.T) {
	items := paragraph()
	if got := after(items, 1); got != 2 {
		t.Errorf("after(1) = %d, want 2", got)
	}
	if got := after(items, 9); got != len(items) {
		t.Errorf("after(9) = %d, want %d", got, len(items))
	}
}
