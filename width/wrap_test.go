package width

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	ansi := NewANSIAware(nil)

	tests := []struct {
		name     string
		input    string
		limit    int
		tail     string
		m        Measurer
		expected string
	}{
		{name: "fits", input: "abc", limit: 5, expected: "abc"},
		{name: "exactFit", input: "abcde", limit: 5, expected: "abcde"},
		{name: "cut", input: "abcdef", limit: 3, expected: "abc"},
		{name: "cutWithTail", input: "abcdef", limit: 4, tail: "…", expected: "abc…"},
		{name: "zeroLimit", input: "abc", limit: 0, expected: ""},
		{name: "negativeLimit", input: "abc", limit: -2, expected: ""},
		{name: "tailWiderThanLimit", input: "abc", limit: 1, tail: "...", expected: ""},
		{name: "wideCharNotSplit", input: "a世b", limit: 2, expected: "a"},
		{name: "combiningKeptTogether", input: "éxyz", limit: 2, expected: "éx"},
		{name: "ansiSequencesKept", input: "\x1b[31mabcdef\x1b[0m", limit: 3, m: ansi, expected: "\x1b[31mabc\x1b[0m"},
		{name: "ansiOpenStyleReset", input: "\x1b[31mabcdef", limit: 2, m: ansi, expected: "\x1b[31mab\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Truncate(tt.input, tt.limit, tt.tail, tt.m))
		})
	}
}

func TestTruncateStable(t *testing.T) {
	once := Truncate("hello world", 7, "", nil)
	require.Equal(t, once, Truncate(once, 7, "", nil))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		budget    int
		keepWords bool
		expected  []string
	}{
		{name: "empty", input: "", budget: 5, expected: []string{""}},
		{name: "fits", input: "abc", budget: 5, expected: []string{"abc"}},
		{name: "exactBudget", input: "abcde", budget: 5, expected: []string{"abcde"}},
		{name: "hardBreak", input: "abcdef", budget: 4, expected: []string{"abcd", "ef"}},
		{name: "zeroBudget", input: "abc", budget: 0, expected: []string{"abc"}},
		{name: "wideCharsNeverSplit", input: "世界世", budget: 3, expected: []string{"世", "界", "世"}},
		{name: "clusterWiderThanBudget", input: "世", budget: 1, expected: []string{"世"}},
		{name: "keepWordsBasic", input: "foo bar baz", budget: 7, keepWords: true, expected: []string{"foo bar", "baz"}},
		{name: "keepWordsWordMoved", input: "aa bbbb", budget: 4, keepWords: true, expected: []string{"aa", "bbbb"}},
		{name: "keepWordsLongWordHardBroken", input: "a verylongword", budget: 5, keepWords: true, expected: []string{"a ver", "ylong", "word"}},
		{name: "keepWordsWhitespaceSwallowed", input: "ab cd", budget: 2, keepWords: true, expected: []string{"ab", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Wrap(tt.input, tt.budget, tt.keepWords, nil))
		})
	}
}

func TestWrapANSISequencesUnsplit(t *testing.T) {
	m := NewANSIAware(nil)
	lines := Wrap("\x1b[31mabcd\x1b[0m", 2, false, m)
	require.Equal(t, []string{"\x1b[31mab", "cd\x1b[0m"}, lines)
}

func TestWrapBudgetInvariant(t *testing.T) {
	m := NewANSIAware(nil)
	inputs := []string{
		"the quick brown fox jumps over the lazy dog",
		"世界 hello 世界 mixed content here",
		"\x1b[1mBOLD\x1b[0m and not bold",
	}

	for _, input := range inputs {
		for _, budget := range []int{1, 2, 3, 5, 8, 13} {
			for _, keepWords := range []bool{false, true} {
				for _, line := range Wrap(input, budget, keepWords, m) {
					if m.Width(line) > budget {
						// Only a single cluster wider than the budget may exceed it.
						iter := NewGraphemes(line, nil)
						clusters := 0
						for iter.Next() {
							clusters++
						}
						require.Equal(t, 1, clusters, "line %q exceeds budget %d", line, budget)
					}
				}
			}
		}
	}
}
