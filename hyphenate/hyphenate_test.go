package hyphenate

import (
	"strings"
	"testing"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		raw        string
		letters    string
		priorities []int
	}{
		{".anti5", ".anti", []int{0, 0, 0, 0, 0, 5}},
		{"5able.", "able.", []int{5, 0, 0, 0, 0, 0}},
		{"2bb", "bb", []int{2, 0, 0}},
		{"1ba", "ba", []int{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := parsePattern(tt.raw)
			if got.letters != tt.letters {
				t.Errorf("parsePattern(%q).letters = %q, want %q", tt.raw, got.letters, tt.letters)
			}
			if len(got.priorities) != len(tt.priorities) {
				t.Fatalf("parsePattern(%q).priorities = %v, want %v", tt.raw, got.priorities, tt.priorities)
			}
			for i := range tt.priorities {
				if got.priorities[i] != tt.priorities[i] {
					t.Errorf("parsePattern(%q).priorities[%d] = %d, want %d", tt.raw, i, got.priorities[i], tt.priorities[i])
				}
			}
		})
	}
}

func TestCompilePatterns_CoversEveryGroup(t *testing.T) {
	dict := NewEnglishHyphenation()
	want := len(prefixPatterns()) + len(suffixPatterns()) + len(commonPatterns()) +
		len(doubleConsonantPatterns()) + len(specificWordPatterns())
	if got := len(dict.patterns); got != want {
		t.Errorf("compiled %d patterns, want %d (one per raw pattern across all groups)", got, want)
	}
}

func TestApplyPattern_KeepsHighestPriority(t *testing.T) {
	entry := patternEntry{letters: "ab", priorities: []int{1, 4, 0}}
	priorities := []int{0, 0, 5, 0}

	applyPattern("xabx", entry, priorities)

	// entry matches "ab" at index 1, raising priorities[1..3]; index 2
	// already held a higher priority (5) from some other pattern and
	// must not be lowered by this match's 4.
	want := []int{0, 1, 5, 0}
	for i := range want {
		if priorities[i] != want[i] {
			t.Errorf("priorities[%d] = %d, want %d", i, priorities[i], want[i])
		}
	}
}

func TestHyphenate_RespectsMinConstraints(t *testing.T) {
	dict := NewEnglishHyphenation()
	words := []string{
		"example", "table", "record", "present", "project",
		"computer", "algorithm", "hyphenation", "pattern",
		"Example", "EXAMPLE", "internationalization",
	}

	for _, word := range words {
		t.Run(word, func(t *testing.T) {
			points := dict.Hyphenate(word)
			for _, p := range points {
				if p < dict.minLeft || p > len(word)-dict.minRight {
					t.Errorf("point %d violates minLeft=%d/minRight=%d for %q", p, dict.minLeft, dict.minRight, word)
				}
				if p <= 0 || p >= len(word) {
					t.Errorf("point %d out of range for %q (len=%d)", p, word, len(word))
				}
			}
		})
	}
}

func TestHyphenate_TooShortWordsHaveNoPoints(t *testing.T) {
	dict := NewEnglishHyphenation()
	for _, word := range []string{"cat", "to", "a", ""} {
		if points := dict.Hyphenate(word); points != nil {
			t.Errorf("Hyphenate(%q) = %v, want nil (shorter than minLeft+minRight=%d)", word, points, dict.minLeft+dict.minRight)
		}
	}
}

func TestHyphenate_KnownPrefixPoint(t *testing.T) {
	dict := NewEnglishHyphenation()
	points := dict.Hyphenate("example")
	if len(points) == 0 || points[0] != 2 {
		t.Errorf("Hyphenate(%q) = %v, want a break after \"ex\" at index 2 (.ex1 prefix pattern)", "example", points)
	}
}

func TestHyphenateWithString_OneHyphenPerPoint(t *testing.T) {
	dict := NewEnglishHyphenation()
	for _, word := range []string{"example", "table", "hyphenation"} {
		points := dict.Hyphenate(word)
		result := dict.HyphenateWithString(word, "-")
		if got := strings.Count(result, "-"); got != len(points) {
			t.Errorf("HyphenateWithString(%q) = %q, has %d hyphens, want %d", word, result, got, len(points))
		}
		if strings.ReplaceAll(result, "-", "") != word {
			t.Errorf("HyphenateWithString(%q) = %q, lost or changed non-hyphen characters", word, result)
		}
	}
}

func TestHyphenateWithString_NoPointsReturnsWordUnchanged(t *testing.T) {
	dict := NewEnglishHyphenation()
	if got := dict.HyphenateWithString("cat", "-"); got != "cat" {
		t.Errorf("HyphenateWithString(%q) = %q, want unchanged word", "cat", got)
	}
}

func BenchmarkHyphenate(b *testing.B) {
	dict := NewEnglishHyphenation()
	word := "internationalization"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dict.Hyphenate(word)
	}
}

func BenchmarkHyphenateWithString(b *testing.B) {
	dict := NewEnglishHyphenation()
	word := "internationalization"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dict.HyphenateWithString(word, "-")
	}
}
