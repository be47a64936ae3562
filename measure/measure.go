// Package measure provides Unicode-aware text width measurement for
// feeding the linebreak engine's item stream.
//
// It coordinates three Unicode standards to produce widths that are
// correct for CJK characters, emoji, and combining marks:
//
//   - UAX #11: East Asian Width (https://www.unicode.org/reports/tr11/)
//   - UAX #29: Text Segmentation (https://www.unicode.org/reports/tr29/)
//   - UTS #51: Unicode Emoji (https://www.unicode.org/reports/tr51/)
//
// # Units
//
// All widths are in "abstract units" determined by the MeasureFunc
// configuration: for terminals, character cells (1.0 per ASCII, 2.0
// per CJK); for other renderers, whatever the supplied MeasureFunc
// returns. The package doesn't care about unit semantics, it just
// accumulates whatever MeasureFunc returns per grapheme.
//
// # Quick Start
//
//	txt := measure.NewTerminal()
//	width := txt.Width("Hello 世界") // 10.0 cells
package measure

import (
	"github.com/SCKelemen/unicode/uax11"
	"github.com/SCKelemen/unicode/uax29"
	"github.com/SCKelemen/unicode/uts51"
)

// Config configures text measurement behavior.
type Config struct {
	// MeasureFunc measures the width of a single rune in abstract units.
	// For terminals: returns 0, 1 or 2 (cells).
	MeasureFunc MeasureFunc

	// AmbiguousAsWide marks a configuration for UAX #11's East Asian
	// context (NewTerminalEastAsian sets it). Width does not read it:
	// ambiguous-width characters measure as MeasureFunc returns.
	AmbiguousAsWide bool
}

// MeasureFunc measures the width of a single rune in abstract units.
type MeasureFunc func(r rune) float64

// Text provides Unicode-aware width measurement.
type Text struct {
	config Config
}

// New creates a Text instance with the given configuration.
func New(config Config) *Text {
	if config.MeasureFunc == nil {
		config.MeasureFunc = TerminalMeasure
	}
	return &Text{config: config}
}

// NewTerminal creates a Text instance configured for terminal rendering:
// TerminalMeasure for width, ambiguous characters treated as narrow.
func NewTerminal() *Text {
	return New(Config{MeasureFunc: TerminalMeasure})
}

// NewTerminalEastAsian is like NewTerminal but treats ambiguous-width
// characters as wide (2 cells), for East Asian locales.
func NewTerminalEastAsian() *Text {
	return New(Config{MeasureFunc: TerminalMeasureEastAsian, AmbiguousAsWide: true})
}

// Width measures the display width of s in abstract units, grapheme
// cluster by grapheme cluster (so combining marks, ZWJ sequences, and
// skin-tone modifiers measure as a single unit, not per-rune).
func (t *Text) Width(s string) float64 {
	width := 0.0
	for _, g := range uax29.Graphemes(s) {
		for _, r := range g {
			width += t.config.MeasureFunc(r)
			break
		}
	}
	return width
}

// Graphemes splits s into grapheme clusters (user-perceived characters).
func (t *Text) Graphemes(s string) []string {
	return uax29.Graphemes(s)
}

// TerminalMeasure measures a rune in terminal cells: 2 for wide
// characters (CJK, fullwidth, emoji), 1 for narrow, 0 for zero-width
// (combining marks, ZWJ, variation selectors). UTS #51 takes
// precedence over UAX #11 for emoji.
func TerminalMeasure(r rune) float64 {
	if uts51.IsEmoji(r) || uts51.IsEmojiComponent(r) {
		return float64(uts51.EmojiWidth(r))
	}
	return float64(uax11.CharWidth(r, uax11.ContextNarrow))
}

// TerminalMeasureEastAsian is like TerminalMeasure but treats ambiguous
// characters as wide (2 cells), per UAX #11's East Asian context.
func TerminalMeasureEastAsian(r rune) float64 {
	if uts51.IsEmoji(r) || uts51.IsEmojiComponent(r) {
		return float64(uts51.EmojiWidth(r))
	}
	return float64(uax11.CharWidth(r, uax11.ContextEastAsian))
}
