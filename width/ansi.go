package width

// SequenceLength returns the byte length of the ANSI escape sequence starting
// at s[0], or 0 if s does not start with a complete sequence. A lone trailing
// ESC returns 1; unterminated multi-byte sequences return 0 so callers can
// fall back to consuming the ESC byte alone.
func SequenceLength(s string) int {
	if len(s) == 0 || s[0] != '\x1b' {
		return 0
	}
	if len(s) == 1 {
		return 1
	}

	switch s[1] {
	case '[':
		for i := 2; i < len(s); i++ {
			final := s[i]
			if final >= 0x40 && final <= 0x7e { // Final byte of a CSI sequence
				return i + 1
			}
		}
		return 0
	case ']':
		for i := 2; i < len(s); i++ {
			if s[i] == '\a' { // BEL terminator
				return i + 1
			}
			if s[i] == '\\' && s[i-1] == '\x1b' { // ST terminator (ESC \)
				return i + 1
			}
		}
		return 0
	case 'P', '^', '_':
		for i := 2; i < len(s); i++ {
			if s[i] == '\\' && s[i-1] == '\x1b' {
				return i + 1
			}
		}
		return 0
	default:
		return 2 // ESC followed by a single-character control sequence
	}
}

const ansiReset = "\x1b[0m"

// leavesOpenStyle reports whether seq is an SGR sequence that sets any
// attribute, i.e. anything other than a full reset ("\x1b[m" or "\x1b[0m" or
// parameter lists ending in an unconditional 0). Non-SGR sequences report
// false: they carry no style to leak.
func leavesOpenStyle(seq string) bool {
	if len(seq) < 3 || seq[0] != '\x1b' || seq[1] != '[' || seq[len(seq)-1] != 'm' {
		return false
	}
	params := seq[2 : len(seq)-1]
	if params == "" || params == "0" {
		return false
	}
	return true
}

// resetsStyle reports whether seq is an SGR full reset.
func resetsStyle(seq string) bool {
	if len(seq) < 3 || seq[0] != '\x1b' || seq[1] != '[' || seq[len(seq)-1] != 'm' {
		return false
	}
	params := seq[2 : len(seq)-1]
	return params == "" || params == "0"
}
