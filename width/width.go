// Package width measures and manipulates strings in terminal display-width
// units: the number of monospace columns a string occupies when printed, as
// opposed to its byte or rune count. East Asian wide characters count as 2
// columns, combining marks as 0, and (for the ANSI-aware strategy) escape
// sequences as 0.
//
// Measurement is pluggable through the Measurer interface; the concrete
// strategy is chosen at construction time.
package width

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation for East Asian code points and emoji.
type Options struct {
	EastAsianWidth   bool // if true, treats ambiguous East Asian code points as 2 wide. Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

// A Measurer reports the display width of a string. Implementations must be
// pure: the same input always yields the same width.
type Measurer interface {
	Width(s string) int
}

// Plain measures grapheme clusters with no special handling of tabs or escape
// sequences. A literal tab measures as runewidth reports it (0).
type Plain struct {
	cond *runewidth.Condition
}

// NewPlain returns a Plain measurer. If opts is nil, locale is assumed to be
// non-East Asian.
func NewPlain(opts *Options) *Plain {
	return &Plain{cond: conditionFromOptions(opts)}
}

func (p *Plain) Width(s string) int {
	return p.cond.StringWidth(s)
}

// RuneWidth returns the width of a single rune under this measurer's locale
// condition.
func (p *Plain) RuneWidth(r rune) int {
	return p.cond.RuneWidth(r)
}

// TabAware measures like Plain but counts each '\t' as TabWidth columns.
type TabAware struct {
	plain    *Plain
	tabWidth int
}

// NewTabAware returns a measurer where every tab occupies tabWidth columns.
// A tabWidth < 0 is treated as 0.
func NewTabAware(tabWidth int, opts *Options) *TabAware {
	if tabWidth < 0 {
		tabWidth = 0
	}
	return &TabAware{plain: NewPlain(opts), tabWidth: tabWidth}
}

func (t *TabAware) Width(s string) int {
	w := 0
	for {
		i := strings.IndexByte(s, '\t')
		if i == -1 {
			return w + t.plain.Width(s)
		}
		w += t.plain.Width(s[:i]) + t.tabWidth
		s = s[i+1:]
	}
}

// TabWidth reports the configured columns per tab.
func (t *TabAware) TabWidth() int {
	return t.tabWidth
}

// ANSIAware measures like Plain but recognized ANSI escape sequences (CSI,
// OSC, DCS and two-byte ESC sequences) contribute zero width. A malformed or
// unterminated sequence is counted as zero width for the lone ESC byte and
// the rest of the string is measured normally.
type ANSIAware struct {
	plain *Plain
}

// NewANSIAware returns an ANSIAware measurer. If opts is nil, locale is
// assumed to be non-East Asian.
func NewANSIAware(opts *Options) *ANSIAware {
	return &ANSIAware{plain: NewPlain(opts)}
}

func (a *ANSIAware) Width(s string) int {
	if s == "" {
		return 0
	}

	w := 0
	segmentStart := 0

	for i := 0; i < len(s); {
		if s[i] != '\x1b' {
			i++
			continue
		}

		if segmentStart < i {
			w += a.plain.Width(s[segmentStart:i])
		}

		seqLen := SequenceLength(s[i:])
		if seqLen == 0 {
			i++ // lone ESC, zero width
		} else {
			i += seqLen
		}
		segmentStart = i
	}

	if segmentStart < len(s) {
		w += a.plain.Width(s[segmentStart:])
	}

	return w
}

// Graphemes iterates over the grapheme clusters of a string, exposing the
// display width of each cluster.
type Graphemes struct {
	iter graphemes.Iterator[string]
	cond *runewidth.Condition
}

// NewGraphemes returns a grapheme iterator for s. If opts is nil, locale is
// assumed to be non-East Asian.
func NewGraphemes(s string, opts *Options) *Graphemes {
	return &Graphemes{
		iter: graphemes.FromString(s),
		cond: conditionFromOptions(opts),
	}
}

func (g *Graphemes) Next() bool {
	return g.iter.Next()
}

// Value returns the current grapheme cluster.
func (g *Graphemes) Value() string {
	return g.iter.Value()
}

// Start returns the byte position of the current cluster in the original string.
func (g *Graphemes) Start() int {
	return g.iter.Start()
}

// End returns the byte position after the current cluster.
func (g *Graphemes) End() int {
	return g.iter.End()
}

// Width returns the display width of the current cluster.
func (g *Graphemes) Width() int {
	return g.cond.StringWidth(g.iter.Value())
}

func conditionFromOptions(opts *Options) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}

	return cond
}
