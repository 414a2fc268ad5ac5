package objfmt

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// quoter turns raw text into a quoted literal. Double quotes are always
// allowed; apostrophes and backticks only when enabled.
type quoter struct {
	apos     bool
	backtick bool
	html     bool
}

// pick returns the allowed quote character needing the fewest escapes.
// Ties go to '"', then '\'', then '`'.
func (q quoter) pick(s string) byte {
	best := byte('"')
	n := strings.Count(s, `"`)
	if q.apos {
		if c := strings.Count(s, "'"); c < n {
			best, n = '\'', c
		}
	}
	if q.backtick {
		if c := strings.Count(s, "`") + strings.Count(s, "${"); c < n {
			best = '`'
		}
	}
	return best
}

func (q quoter) quote(s string) string {
	buf := make([]byte, 0, len(s)+2)
	return string(q.appendQuoted(buf, s))
}

func (q quoter) appendQuoted(buf []byte, s string) []byte {
	qc := q.pick(s)
	buf = append(buf, qc)
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '\r':
				buf = append(buf, '\\', 'r')
			case c == '\n':
				buf = append(buf, '\\', 'n')
			case c == '\t':
				buf = append(buf, '\\', 't')
			case c == '\\' || c == qc:
				buf = append(buf, '\\', c)
			case c == '$' && qc == '`' && i+1 < len(s) && s[i+1] == '{':
				buf = append(buf, '\\', '$')
			case q.html && (c == '&' || c == '<' || c == '>'):
				buf = appendHTMLEntity(buf, c)
			case c < ' ' || c == 0x7F:
				buf = appendHexEscape(buf, rune(c))
			default:
				buf = append(buf, c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			buf = appendHexEscape(buf, rune(c))
		case !unicode.IsGraphic(r):
			buf = appendHexEscape(buf, r)
		default:
			buf = append(buf, s[i:i+size]...)
		}
		i += size
	}
	return append(buf, qc)
}

// appendHexEscape writes \xHH for code points up to 0xFF and one \uHHHH
// per UTF-16 code unit otherwise.
func appendHexEscape(buf []byte, r rune) []byte {
	if r <= 0xFF {
		return append(buf, '\\', 'x', hexDigits[r>>4], hexDigits[r&0xF])
	}
	units := []rune{r}
	if r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		units = []rune{hi, lo}
	}
	for _, u := range units {
		buf = append(buf, '\\', 'u',
			hexDigits[u>>12&0xF], hexDigits[u>>8&0xF], hexDigits[u>>4&0xF], hexDigits[u&0xF])
	}
	return buf
}

func appendHTMLEntity(buf []byte, c byte) []byte {
	switch c {
	case '&':
		return append(buf, "&amp;"...)
	case '<':
		return append(buf, "&lt;"...)
	default:
		return append(buf, "&gt;"...)
	}
}

var htmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// isIdent reports whether key can be written without quotes: a letter or
// underscore followed by letters, underscores and ASCII digits.
func isIdent(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
