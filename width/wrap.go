package width

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// Truncate cuts s down to at most limit display columns, measured by m,
// appending tail (whose width counts against limit) when anything was cut.
// s must not contain newlines.
//
// The cut never splits a grapheme cluster or an ANSI escape sequence. If the
// kept portion leaves an SGR style open, a reset is appended before tail so
// styles don't leak into subsequent output. If m is nil, a Plain measurer is
// used.
func Truncate(s string, limit int, tail string, m Measurer) string {
	if m == nil {
		m = NewPlain(nil)
	}
	if limit < 0 {
		limit = 0
	}
	if m.Width(s) <= limit {
		return s
	}

	budget := limit - m.Width(tail)
	if budget < 0 {
		return ""
	}

	var b strings.Builder
	kept := 0
	open := false

	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			seqLen := SequenceLength(s[i:])
			if seqLen == 0 {
				seqLen = 1
			}
			seq := s[i : i+seqLen]
			sw := m.Width(seq)
			if kept+sw > budget {
				break
			}
			b.WriteString(seq)
			kept += sw
			if leavesOpenStyle(seq) {
				open = true
			} else if resetsStyle(seq) {
				open = false
			}
			i += seqLen
			continue
		}

		nextEsc := strings.IndexByte(s[i:], '\x1b')
		segmentEnd := len(s)
		if nextEsc >= 0 {
			segmentEnd = i + nextEsc
		}

		iter := NewGraphemes(s[i:segmentEnd], nil)
		broke := false
		for iter.Next() {
			cluster := iter.Value()
			cw := m.Width(cluster)
			if kept+cw > budget {
				broke = true
				break
			}
			b.WriteString(cluster)
			kept += cw
		}
		if broke {
			break
		}

		i = segmentEnd
	}

	if open {
		b.WriteString(ansiReset)
	}
	b.WriteString(tail)
	return b.String()
}

// Wrap greedily breaks s into lines of at most budget display columns,
// measured by m. s must not contain newlines.
//
// If keepWords is true, breaks prefer word boundaries: a word that still fits
// on a fresh line is moved there whole, and only words wider than the budget
// itself are hard-broken between grapheme clusters. Whitespace swallowed by a
// break is not carried onto the next line.
//
// Escape sequences are emitted unsplit on the line where they occur. A single
// grapheme cluster wider than the budget is emitted alone on its own line.
// If m is nil, a Plain measurer is used. A budget <= 0 returns s unbroken.
func Wrap(s string, budget int, keepWords bool, m Measurer) []string {
	if s == "" {
		return []string{""}
	}
	if budget <= 0 {
		return []string{s}
	}
	if m == nil {
		m = NewPlain(nil)
	}

	var w wrapper
	w.budget = budget
	w.m = m
	w.trimBreaks = keepWords

	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			seqLen := SequenceLength(s[i:])
			if seqLen == 0 {
				seqLen = 1
			}
			w.putAtom(s[i:i+seqLen], m.Width(s[i:i+seqLen]))
			i += seqLen
			continue
		}

		nextEsc := strings.IndexByte(s[i:], '\x1b')
		segmentEnd := len(s)
		if nextEsc >= 0 {
			segmentEnd = i + nextEsc
		}
		segment := s[i:segmentEnd]
		i = segmentEnd

		if keepWords {
			iter := words.FromString(segment)
			for iter.Next() {
				w.putWord(iter.Value())
			}
		} else {
			iter := NewGraphemes(segment, nil)
			for iter.Next() {
				w.putAtom(iter.Value(), m.Width(iter.Value()))
			}
		}
	}

	return w.finish()
}

type wrapper struct {
	budget     int
	m          Measurer
	trimBreaks bool // word mode drops whitespace adjacent to a break

	lines   []string
	current strings.Builder
	width   int
}

func (w *wrapper) breakLine() {
	line := w.current.String()
	if w.trimBreaks {
		line = strings.TrimRight(line, " \t")
	}
	w.lines = append(w.lines, line)
	w.current.Reset()
	w.width = 0
}

// putAtom places an unbreakable unit (grapheme cluster or escape sequence).
func (w *wrapper) putAtom(atom string, atomWidth int) {
	if atomWidth > w.budget {
		// Wider than any line can be: isolate it.
		if w.current.Len() > 0 {
			w.breakLine()
		}
		w.current.WriteString(atom)
		w.breakLine()
		return
	}

	if w.width+atomWidth > w.budget {
		w.breakLine()
	}

	w.current.WriteString(atom)
	w.width += atomWidth
}

// putWord places a word token, keeping it whole when a fresh line can hold it.
func (w *wrapper) putWord(word string) {
	wordWidth := w.m.Width(word)
	blank := strings.TrimSpace(word) == ""

	if blank && w.current.Len() == 0 && len(w.lines) > 0 {
		// Whitespace at the start of a continuation line was consumed by the break.
		return
	}

	if w.width+wordWidth <= w.budget {
		w.current.WriteString(word)
		w.width += wordWidth
		return
	}

	if blank {
		// Whitespace at a break point is swallowed, not wrapped.
		if w.current.Len() > 0 {
			w.breakLine()
		}
		return
	}

	if wordWidth <= w.budget {
		if w.current.Len() > 0 {
			w.breakLine()
		}
		w.current.WriteString(word)
		w.width = wordWidth
		return
	}

	// The word alone exceeds the budget: hard-break it cluster by cluster.
	iter := NewGraphemes(word, nil)
	for iter.Next() {
		w.putAtom(iter.Value(), w.m.Width(iter.Value()))
	}
}

func (w *wrapper) finish() []string {
	if w.current.Len() > 0 {
		w.lines = append(w.lines, w.current.String())
	}
	if len(w.lines) == 0 {
		w.lines = []string{""}
	}
	return w.lines
}
