package grid

// Color decorates a run of output with an opaque prefix and suffix, typically
// ANSI SGR sequences. The engine never parses the contents; a Color only
// contributes its bytes around the decorated segment and zero display width.
type Color struct {
	Prefix string
	Suffix string
}

// IsZero reports whether the color carries no decoration.
func (c Color) IsZero() bool {
	return c.Prefix == "" && c.Suffix == ""
}

// Sprint wraps s in the color's prefix and suffix. An empty s or a zero color
// returns s unchanged.
func (c Color) Sprint(s string) string {
	if s == "" || c.IsZero() {
		return s
	}
	return c.Prefix + s + c.Suffix
}

// Basic ANSI foreground colors, for demos and tests. Callers with richer needs
// supply their own prefix/suffix pairs.
var (
	FgRed     = Color{Prefix: "\x1b[31m", Suffix: "\x1b[39m"}
	FgGreen   = Color{Prefix: "\x1b[32m", Suffix: "\x1b[39m"}
	FgYellow  = Color{Prefix: "\x1b[33m", Suffix: "\x1b[39m"}
	FgBlue    = Color{Prefix: "\x1b[34m", Suffix: "\x1b[39m"}
	FgMagenta = Color{Prefix: "\x1b[35m", Suffix: "\x1b[39m"}
	FgCyan    = Color{Prefix: "\x1b[36m", Suffix: "\x1b[39m"}
)
