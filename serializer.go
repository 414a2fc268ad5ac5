package objfmt

import (
	"slices"

	"github.com/mattn/go-runewidth"
)

// tabStop is the column width a tab counts for when measuring indents.
const tabStop = 4

// serializer owns the output buffer and the layout state of one render.
// It is not safe for concurrent use; each Format call acquires its own.
type serializer struct {
	buf            []byte
	addIndent      string
	addIndentShort string
	style          IndentStyle
	width          int
	q              quoter
	longAsBlock    bool
	includeHidden  bool
	noPlain        bool
	noPlainFor     []string
	st             Styles

	// kinds is the stack of enclosing container kinds.
	kinds []Kind
	// path holds the identities of the composites currently being walked.
	path map[identity]struct{}
}

// renderCtx is threaded through the recursive walk.
type renderCtx struct {
	indent string
	// index is the position among siblings; -1 marks the top-level value.
	index int
	key   label
	// open suppresses the trailing ",\n" (composite map keys).
	open bool
}

func (c renderCtx) tail() bool {
	return c.index != -1 && !c.open
}

// label is the already rendered key prefix of a member, separator included.
type label struct {
	text string
	// width is what the label costs on the line, for the folding budget.
	width int
	// cont means the member continues a line that is already indented.
	cont bool
}

func (s *serializer) configure(opts *Options) {
	if opts == nil {
		opts = DefaultOptions
	}
	s.addIndent = opts.Indent
	s.style = opts.Style
	s.addIndentShort = s.addIndent
	if s.style == Horstmann && s.addIndent != "\t" && s.addIndent != "" {
		s.addIndentShort = s.addIndent[:len(s.addIndent)-1]
	}
	s.width = opts.PreferLineWidth
	if s.width <= 0 {
		s.width = DefaultPreferLineWidth
	}
	s.q = quoter{apos: opts.AllowApos, backtick: opts.AllowBacktick, html: opts.HTML}
	s.longAsBlock = opts.LongStringAsBlock
	s.includeHidden = opts.IncludeHidden
	s.noPlain = opts.NoPlainForm
	s.noPlainFor = opts.NoPlainFormFor
	s.st = opts.Styles
}

// column returns the visual width of an indent, tabs expanded.
func column(indent string) int {
	w := 0
	for _, r := range indent {
		if r == '\t' {
			w += tabStop
		} else {
			w += runewidth.RuneWidth(r)
		}
	}
	return w
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

func brackets(k Kind) (byte, byte) {
	if k == KindList || k == KindSet {
		return '[', ']'
	}
	return '{', '}'
}

// separator returns what follows a member key inside the innermost
// container: ":" for records and " =>" for maps.
func (s *serializer) separator() string {
	if n := len(s.kinds); n > 0 && s.kinds[n-1] == KindMap {
		return " =>"
	}
	return ":"
}

// prefix writes the indentation and key label of a member. The first
// member of a container gets the short indent since it follows the opening
// bracket.
func (s *serializer) prefix(withSpace bool, c renderCtx) {
	if !c.key.cont {
		if c.index != 0 {
			s.buf = append(s.buf, c.indent...)
		} else {
			s.buf = append(s.buf, s.addIndentShort...)
		}
	}
	if c.key.text != "" {
		s.buf = append(s.buf, c.key.text...)
		if withSpace {
			s.buf = append(s.buf, ' ')
		}
	}
}

func (s *serializer) writeTail(c renderCtx) {
	if c.tail() {
		s.buf = append(s.buf, ',', '\n')
	}
}

// begin opens a container of n members and returns the indent of its
// members. Empty containers are written inline and leave the indent as is.
func (s *serializer) begin(kind Kind, n int, typeLabel string, c renderCtx) string {
	open, close := brackets(kind)
	wantLabel := typeLabel != ""
	if n == 0 {
		s.prefix(true, c)
		if wantLabel {
			s.buf = s.st.Label.append(s.buf, typeLabel)
			s.buf = append(s.buf, ' ')
		}
		s.buf = s.st.Bracket.append(s.buf, string([]byte{open, close}))
		return c.indent
	}
	s.prefix(wantLabel, c)
	if wantLabel {
		s.buf = s.st.Label.append(s.buf, typeLabel)
	}
	wantNewLine := wantLabel || c.key.text != ""
	switch s.style {
	case Allman:
		if wantNewLine {
			s.buf = append(s.buf, '\n')
			s.buf = append(s.buf, c.indent...)
		}
		s.buf = s.st.Bracket.appendBytes(s.buf, []byte{open})
		s.buf = append(s.buf, '\n')
		s.buf = append(s.buf, c.indent...)
	case Horstmann:
		if wantNewLine {
			s.buf = append(s.buf, '\n')
			s.buf = append(s.buf, c.indent...)
		}
		s.buf = s.st.Bracket.appendBytes(s.buf, []byte{open})
	default:
		if wantNewLine {
			s.buf = append(s.buf, ' ')
		}
		s.buf = s.st.Bracket.appendBytes(s.buf, []byte{open})
		s.buf = append(s.buf, '\n')
		s.buf = append(s.buf, c.indent...)
	}
	s.kinds = append(s.kinds, kind)
	return c.indent + s.addIndent
}

// end closes a container opened by begin with the same arguments.
func (s *serializer) end(kind Kind, n int, c renderCtx) {
	if n != 0 {
		_, close := brackets(kind)
		s.kinds = s.kinds[:len(s.kinds)-1]
		s.buf = append(s.buf, c.indent...)
		s.buf = s.st.Bracket.appendBytes(s.buf, []byte{close})
	}
	s.writeTail(c)
}

// writeLeaf writes a scalar whose literal is already styled.
func (s *serializer) writeLeaf(lit string, c renderCtx) {
	s.prefix(true, c)
	s.buf = append(s.buf, lit...)
	s.writeTail(c)
}

// writeString writes str as a quoted literal, or as a String block when
// folding is enabled and the literal would overflow the line.
func (s *serializer) writeString(str string, c renderCtx) {
	lit := s.q.quote(str)
	if s.longAsBlock && column(c.indent)+c.key.width+displayWidth(lit)+1 > s.width {
		s.writeStringBlock(str, c)
		return
	}
	s.prefix(true, c)
	s.buf = s.st.String.append(s.buf, lit)
	s.writeTail(c)
}

// writeStringBlock writes the raw text of str inside a String labelled
// block. Line breaks inside str are followed by the block's indent.
func (s *serializer) writeStringBlock(str string, c renderCtx) {
	next := s.begin(KindString, 1, "String", c)
	s.prefix(true, renderCtx{indent: next, index: 0})
	if s.q.html {
		str = htmlReplacer.Replace(str)
	}
	s.buf = append(s.buf, s.st.String.Begin...)
	for i := 0; i < len(str); i++ {
		ch := str[i]
		s.buf = append(s.buf, ch)
		switch {
		case ch == '\r' && i+1 < len(str) && str[i+1] == '\n':
			s.buf = append(s.buf, '\n')
			i++
			s.buf = append(s.buf, next...)
		case ch == '\r' || ch == '\n':
			s.buf = append(s.buf, next...)
		}
	}
	s.buf = append(s.buf, s.st.String.End...)
	s.buf = append(s.buf, '\n')
	s.end(KindString, 1, c)
}

// recordKey renders a record member key: bare when it is an identifier,
// quoted otherwise.
func (s *serializer) recordKey(name string) label {
	text := name
	if !isIdent(name) {
		text = s.q.quote(name)
	}
	return label{
		text:  s.st.Key.wrap(text) + s.separator(),
		width: displayWidth(name) + 2,
	}
}

// skipsPlainForm reports whether PlainForm substitution is disabled for the
// named type.
func (s *serializer) skipsPlainForm(typeName string) bool {
	return s.noPlain || slices.Contains(s.noPlainFor, typeName)
}
