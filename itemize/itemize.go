// Package itemize is the glue code a real caller writes to turn a
// plain-text paragraph into the linebreak engine's Box/Glue/Penalty
// item stream: it finds word boundaries with UAX #14, measures each
// piece with the measure package, and optionally splits long words at
// hyphenation points from the hyphenate package.
package itemize

import (
	"math"
	"unicode"

	"github.com/SCKelemen/linebreak"
	"github.com/SCKelemen/linebreak/hyphenate"
	"github.com/SCKelemen/linebreak/measure"
	"github.com/SCKelemen/unicode/uax14"
)

// Options configures how Build turns text into items.
type Options struct {
	// Measure supplies glyph widths. Defaults to measure.NewTerminal().
	Measure *measure.Text
	// Dictionary supplies hyphenation points. Nil disables hyphenation.
	Dictionary hyphenate.DictionaryProvider
	// HyphenPenalty is the penalty value on a flagged hyphenation break.
	HyphenPenalty float64
	// HyphenWidth is the width contributed by a hyphen when a line
	// actually breaks there.
	HyphenWidth float64
	// SpaceStretch and SpaceShrink are fractions of a space's natural
	// width used as its glue stretch and shrink capacity.
	SpaceStretch float64
	SpaceShrink  float64
}

// DefaultOptions returns terminal measurement with English hyphenation
// and TeX's conventional space glue proportions.
func DefaultOptions() Options {
	return Options{
		Measure:       measure.NewTerminal(),
		Dictionary:    hyphenate.NewEnglishDictionary(),
		HyphenPenalty: 50,
		HyphenWidth:   1,
		SpaceStretch:  0.5,
		SpaceShrink:   0.3,
	}
}

func (o Options) withDefaults() Options {
	if o.Measure == nil {
		o.Measure = measure.NewTerminal()
	}
	if o.HyphenPenalty == 0 {
		o.HyphenPenalty = 50
	}
	if o.SpaceStretch == 0 {
		o.SpaceStretch = 0.5
	}
	if o.SpaceShrink == 0 {
		o.SpaceShrink = 0.3
	}
	return o
}

// Build converts a paragraph of plain text into an item stream
// terminated by a forced break, ready for linebreak.BreakLines.
func Build(text string, opts Options) []linebreak.Item {
	opts = opts.withDefaults()

	var items []linebreak.Item
	for _, segment := range splitSegments(text) {
		word, space := splitTrailingSpace(segment)
		if word != "" {
			items = append(items, hyphenate.BoxesAndPenalties(opts.Dictionary, word, opts.Measure.Width, opts.HyphenWidth, opts.HyphenPenalty)...)
		}
		if space != "" {
			w := opts.Measure.Width(space)
			items = append(items, linebreak.NewGlue(w, w*opts.SpaceStretch, w*opts.SpaceShrink))
		}
	}
	items = append(items, linebreak.NewPenalty(0, math.Inf(-1), false))
	return items
}

// splitSegments breaks text at UAX #14 line break opportunities, each
// segment typically a word plus the whitespace that follows it.
func splitSegments(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	breaks := uax14.FindLineBreakOpportunities(text, uax14.HyphensAuto)

	var segments []string
	prev := 0
	for _, b := range breaks {
		if b <= prev || b > len(runes) {
			continue
		}
		segments = append(segments, string(runes[prev:b]))
		prev = b
	}
	if prev < len(runes) {
		segments = append(segments, string(runes[prev:]))
	}
	return segments
}

func splitTrailingSpace(segment string) (word, space string) {
	i := len(segment)
	for i > 0 {
		r := rune(segment[i-1])
		if !unicode.IsSpace(r) {
			break
		}
		i--
	}
	return segment[:i], segment[i:]
}
