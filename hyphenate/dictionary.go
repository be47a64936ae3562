package hyphenate

import (
	"strings"
	"unicode"

	"github.com/SCKelemen/linebreak"
)

// DictionaryProvider supplies hyphenation points and word classification
// for a language, so callers building an item stream can avoid
// hyphenating abbreviations or compound words that shouldn't break.
type DictionaryProvider interface {
	// IsAbbreviation returns true if the word is a known abbreviation
	// (Dr., Mrs., etc.), which should never be hyphenated.
	IsAbbreviation(word string) bool

	// GetHyphenationPoints returns byte indices where hyphenation is
	// allowed within word.
	//
	// Example: "example" -> []int{2} (ex-ample)
	GetHyphenationPoints(word string) []int

	// IsCompoundWord returns true if word is a compound that shouldn't
	// be broken even if pattern matching finds an interior point.
	IsCompoundWord(word string) bool
}

// EnglishDictionary provides common English abbreviations, compounds,
// and Liang's-algorithm hyphenation points.
type EnglishDictionary struct {
	abbreviations map[string]bool
	customWords   map[string]bool
	hyphenation   *HyphenationDictionary
}

// NewEnglishDictionary creates a dictionary with common English
// abbreviations and Liang's-algorithm hyphenation.
func NewEnglishDictionary() *EnglishDictionary {
	return &EnglishDictionary{
		abbreviations: defaultEnglishAbbreviations(),
		customWords:   make(map[string]bool),
		hyphenation:   NewEnglishHyphenation(),
	}
}

func defaultEnglishAbbreviations() map[string]bool {
	return map[string]bool{
		"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
		"rev": true, "hon": true, "st": true,
		"phd": true, "ba": true, "bs": true, "ma": true, "mba": true,
		"jr": true, "sr": true, "esq": true,
		"etc": true, "ie": true, "eg": true, "vs": true, "inc": true,
		"ltd": true, "corp": true, "co": true,
		"ft": true, "in": true, "lb": true, "oz": true, "km": true,
		"cm": true, "mm": true, "kg": true, "mg": true, "ml": true,
		"am": true, "pm": true, "ad": true, "bc": true, "ce": true,
		"no": true, "vol": true, "ed": true, "fig": true, "ref": true,
		"seq": true, "ave": true, "blvd": true, "rd": true, "apt": true,
		"dept": true, "min": true, "max": true, "approx": true,
	}
}

// IsAbbreviation implements DictionaryProvider.
func (d *EnglishDictionary) IsAbbreviation(word string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(word, ".", ""))
	return d.abbreviations[normalized] || d.customWords[normalized]
}

// GetHyphenationPoints implements DictionaryProvider using Liang's algorithm.
func (d *EnglishDictionary) GetHyphenationPoints(word string) []int {
	if d.IsAbbreviation(word) || d.IsCompoundWord(word) {
		return nil
	}
	return d.hyphenation.Hyphenate(word)
}

// IsCompoundWord implements DictionaryProvider.
func (d *EnglishDictionary) IsCompoundWord(word string) bool {
	compounds := map[string]bool{
		"javascript": true, "typescript": true, "database": true,
		"anybody": true, "someone": true, "everyone": true,
	}
	return compounds[strings.ToLower(word)]
}

// AddAbbreviation adds a custom abbreviation to the dictionary.
func (d *EnglishDictionary) AddAbbreviation(abbrev string) {
	normalized := strings.ToLower(strings.TrimSuffix(abbrev, "."))
	d.customWords[normalized] = true
}

// AddAbbreviations adds multiple custom abbreviations.
func (d *EnglishDictionary) AddAbbreviations(abbrevs []string) {
	for _, abbrev := range abbrevs {
		d.AddAbbreviation(abbrev)
	}
}

// BoxesAndPenalties measures word with widthOf and splits it into the
// linebreak engine's Box/Penalty items: a Box per piece between
// hyphenation points, joined by a flagged Penalty of the given width
// and cost at each point Liang's algorithm allows. If dict is nil or
// finds no break, word comes back as a single Box.
//
// Leading/trailing punctuation is excluded from pattern matching (a
// dictionary works on letters) but still measured as part of the
// adjacent piece, so "example," hyphenates the same as "example".
func BoxesAndPenalties(dict DictionaryProvider, word string, widthOf func(string) float64, hyphenWidth, penalty float64) []linebreak.Item {
	points := hyphenationPoints(dict, word)
	if len(points) == 0 {
		return []linebreak.Item{linebreak.NewBox(widthOf(word))}
	}

	items := make([]linebreak.Item, 0, len(points)*2+1)
	last := 0
	for _, p := range points {
		items = append(items, linebreak.NewBox(widthOf(word[last:p])))
		items = append(items, linebreak.NewPenalty(hyphenWidth, penalty, true))
		last = p
	}
	return append(items, linebreak.NewBox(widthOf(word[last:])))
}

// hyphenationPoints runs dict against the letters of word, then shifts
// the resulting offsets back to account for any punctuation trimmed
// off the front.
func hyphenationPoints(dict DictionaryProvider, word string) []int {
	if dict == nil {
		return nil
	}
	trimmed := strings.TrimFunc(word, func(r rune) bool { return !unicode.IsLetter(r) })
	if trimmed == "" {
		return nil
	}
	offset := strings.Index(word, trimmed)
	points := dict.GetHyphenationPoints(trimmed)
	if offset == 0 {
		return points
	}
	shifted := make([]int, len(points))
	for i, p := range points {
		shifted[i] = p + offset
	}
	return shifted
}

// EmptyDictionary provides no hyphenation or classification at all.
type EmptyDictionary struct{}

func (d *EmptyDictionary) IsAbbreviation(word string) bool        { return false }
func (d *EmptyDictionary) GetHyphenationPoints(word string) []int { return nil }
func (d *EmptyDictionary) IsCompoundWord(word string) bool        { return false }
