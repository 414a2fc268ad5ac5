package objfmt

import (
	"io"
	"strings"
)

// DefaultPreferLineWidth is the soft line width used when
// Options.PreferLineWidth is not positive.
const DefaultPreferLineWidth = 160

// IndentStyle selects where opening brackets go.
type IndentStyle int

const (
	// KR keeps the opening bracket on the label's line (Kernighan & Ritchie).
	KR IndentStyle = iota
	// Allman puts the opening bracket on its own line.
	Allman
	// Horstmann puts the opening bracket on its own line and continues
	// with the first member right after it.
	Horstmann
)

var indentStyleNames = [...]string{KR: "kr", Allman: "allman", Horstmann: "horstmann"}

func (s IndentStyle) String() string {
	if s >= 0 && int(s) < len(indentStyleNames) {
		return indentStyleNames[s]
	}
	return "kr"
}

// ParseIndentStyle maps "kr", "allman" and "horstmann" (any case) to an
// IndentStyle.
func ParseIndentStyle(name string) (IndentStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "kr", "k&r":
		return KR, true
	case "allman", "bsd":
		return Allman, true
	case "horstmann":
		return Horstmann, true
	}
	return KR, false
}

// Options controls the rendering.
type Options struct {
	// Indent is appended once per nesting level. Use IndentWidth to build it
	// from a number of spaces.
	Indent string
	// Style selects bracket placement. Default KR.
	Style IndentStyle
	// PreferLineWidth bounds numeric array packing and long string folding.
	// Values <= 0 mean DefaultPreferLineWidth.
	PreferLineWidth int
	// AllowApos and AllowBacktick widen the set of quote characters a
	// string may be wrapped in.
	AllowApos     bool
	AllowBacktick bool
	// LongStringAsBlock renders strings that would overflow the line as a
	// String block holding the raw text.
	LongStringAsBlock bool
	// HTML escapes &, < and > inside keys and strings.
	HTML bool
	// IncludeHidden also renders Record fields and struct fields marked
	// hidden.
	IncludeHidden bool
	// NoPlainForm disables PlainFormer substitution entirely.
	NoPlainForm bool
	// NoPlainFormFor disables PlainFormer substitution for the listed type
	// names.
	NoPlainFormFor []string
	// Styles wraps each literal category in caller supplied markers.
	Styles Styles
}

// DefaultOptions holds the fallback configuration: four spaces, K&R, 160
// columns.
var DefaultOptions = &Options{Indent: "    ", Style: KR, PreferLineWidth: DefaultPreferLineWidth}

// IndentWidth returns n spaces for 0 <= n <= 10 and a single tab otherwise.
func IndentWidth(n int) string {
	if n >= 0 && n <= 10 {
		return strings.Repeat(" ", n)
	}
	return "\t"
}

// Format renders v as indented text.
func Format(v any, opts *Options) string {
	return FormatIndent(v, opts, "", nil)
}

// FormatIndent renders v starting at indent. When ref is not nil, members
// of v that also exist in ref are visited in ref's order, followed by the
// remaining members of v in their own order. Rendering two snapshots of the
// same state with the older one as ref keeps their output aligned.
func FormatIndent(v any, opts *Options, indent string, ref any) string {
	s := acquireSerializer(opts)
	defer releaseSerializer(s)
	s.walk(v, ref, renderCtx{indent: indent, index: -1})
	return string(s.buf)
}

// FormatTo writes the rendering of v to w.
func FormatTo(w io.Writer, v any, opts *Options) error {
	s := acquireSerializer(opts)
	defer releaseSerializer(s)
	s.walk(v, nil, renderCtx{index: -1})
	_, err := w.Write(s.buf)
	return err
}
