// Package hyphenate finds word-internal hyphenation points using Frank
// Liang's pattern-matching algorithm (1983), the same method TeX uses,
// and turns them directly into the linebreak engine's flagged Penalty
// items (see BoxesAndPenalties in dictionary.go).
//
// Reference: "Word Hy-phen-a-tion by Com-put-er" by Franklin Mark Liang
// https://tug.org/docs/liang/
package hyphenate

import "strings"

// patternEntry is one compiled Liang pattern: the bare letters to
// search for, plus the priority to raise at each inter-letter position
// (patternEntry.priorities[0] sits before the first letter).
type patternEntry struct {
	letters    string
	priorities []int
}

// HyphenationDictionary holds a compiled set of Liang patterns for one
// language, plus the minimum number of letters Liang's method requires
// on either side of a break.
type HyphenationDictionary struct {
	patterns []patternEntry
	minLeft  int
	minRight int
}

// NewEnglishHyphenation compiles a subset of TeX's English hyphenation
// patterns. For production use, load the full pattern file from
// https://github.com/hyphenation/tex-hyphen instead.
func NewEnglishHyphenation() *HyphenationDictionary {
	return &HyphenationDictionary{
		patterns: compilePatterns(
			prefixPatterns(),
			suffixPatterns(),
			commonPatterns(),
			doubleConsonantPatterns(),
			specificWordPatterns(),
		),
		minLeft:  2,
		minRight: 3,
	}
}

// compilePatterns parses every raw "letters+digits" pattern once at
// construction time, so Hyphenate never re-parses a pattern string on
// the hot path.
func compilePatterns(groups ...[]string) []patternEntry {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]patternEntry, 0, n)
	for _, g := range groups {
		for _, raw := range g {
			out = append(out, parsePattern(raw))
		}
	}
	return out
}

// parsePattern splits a Liang pattern like "ex1am" into its bare
// letters ("exam") and a priorities slice holding the digit (if any)
// that sits before each letter, plus one trailing slot.
func parsePattern(raw string) patternEntry {
	var letters strings.Builder
	priorities := make([]int, 0, len(raw)+1)
	priorities = append(priorities, 0)
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch >= '0' && ch <= '9' {
			priorities[len(priorities)-1] = int(ch - '0')
			continue
		}
		letters.WriteByte(ch)
		priorities = append(priorities, 0)
	}
	return patternEntry{letters: letters.String(), priorities: priorities}
}

// prefixPatterns covers common English prefixes (anti-, co-, dis-, ...).
func prefixPatterns() []string {
	return []string{
		".anti5", ".co4me", ".co4op", ".dis3", ".ex1", ".inter3",
		".multi3", ".non1", ".post3", ".pre3", ".pro3", ".re3",
		".semi3", ".sub3", ".super5", ".trans3", ".un1", ".under3",
	}
}

// suffixPatterns covers common English suffixes (-able, -tion, -ness, ...).
func suffixPatterns() []string {
	return []string{
		"5able.", "5ible.", "5ing.", "5tion.", "5sion.", "5ness.",
		"5ment.", "5ful.", "5less.", "5ous.", "5ive.", "3ence.",
		"3ance.", "3ity.", "3ency.", "3ancy.", "5er.", "5est.", "5ed.",
	}
}

// commonPatterns covers generic consonant-vowel syllable boundaries,
// one pattern per consonant/vowel pair.
func commonPatterns() []string {
	var out []string
	for _, c := range "bcdgmlnprstv" {
		for _, v := range "aeiou" {
			out = append(out, "1"+string(c)+string(v))
		}
	}
	return out
}

// doubleConsonantPatterns blocks a break right before a doubled
// consonant (priority 2, even, so it overrides a priority-1 break there
// but loses to an odd priority of 3 or more).
func doubleConsonantPatterns() []string {
	var out []string
	for _, c := range "bcdfgmlnprst" {
		out = append(out, "2"+string(c)+string(c))
	}
	return out
}

// specificWordPatterns are exceptions the generic rules above get
// wrong often enough to special-case.
func specificWordPatterns() []string {
	return []string{
		"ta1ble", "rec1ord", "pre1sent", "ex1am", "exam1ple",
		"con1test", "pro1ject", "in1for", "com1put", "al1go",
		"hyph1en", "pat1tern",
	}
}

// Hyphenate returns the byte indices within word where Liang's
// algorithm allows a hyphenation break, honoring the dictionary's
// minimum left/right letter counts.
//
//	dict := hyphenate.NewEnglishHyphenation()
//	dict.Hyphenate("example") // []int{2}: ex-ample
func (h *HyphenationDictionary) Hyphenate(word string) []int {
	if len(word) < h.minLeft+h.minRight {
		return nil
	}

	normalized := "." + strings.ToLower(word) + "."
	priorities := make([]int, len(normalized)+1)
	for _, entry := range h.patterns {
		applyPattern(normalized, entry, priorities)
	}

	var points []int
	for i := h.minLeft; i < len(word)-h.minRight; i++ {
		if priorities[i+1]%2 == 1 {
			points = append(points, i)
		}
	}
	return points
}

// applyPattern raises priorities at every position a compiled pattern
// matches inside word, keeping the highest priority seen across all
// overlapping matches (Liang's algorithm never lowers one).
func applyPattern(word string, entry patternEntry, priorities []int) {
	letters := entry.letters
	for i := 0; i <= len(word)-len(letters); i++ {
		if word[i:i+len(letters)] != letters {
			continue
		}
		for j, p := range entry.priorities {
			if p > priorities[i+j] {
				priorities[i+j] = p
			}
		}
	}
}

// HyphenateWithString returns word with hyphen inserted at every
// allowed break point.
//
//	dict.HyphenateWithString("example", "-") // "ex-ample"
func (h *HyphenationDictionary) HyphenateWithString(word, hyphen string) string {
	points := h.Hyphenate(word)
	if len(points) == 0 {
		return word
	}

	var b strings.Builder
	last := 0
	for _, p := range points {
		b.WriteString(word[last:p])
		b.WriteString(hyphen)
		last = p
	}
	b.WriteString(word[last:])
	return b.String()
}
