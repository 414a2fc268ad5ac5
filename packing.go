package objfmt

import "strings"

// cell is one element of a packed array.
type cell struct {
	text string
	kind Kind
}

// packCells returns the cells of a list whose members are all numbers,
// booleans, null or undefined once their plain form is applied. Any other
// member disqualifies packing.
func (s *serializer) packCells(ms []member) ([]cell, bool) {
	if len(ms) == 0 {
		return nil, false
	}
	cells := make([]cell, len(ms))
	for i, m := range ms {
		n := s.classify(m.value, true)
		switch n.kind {
		case KindNumber, KindBoolean, KindNull, KindUndefined:
			cells[i] = cell{text: n.text, kind: n.kind}
		default:
			return nil, false
		}
	}
	return cells, true
}

// fieldWidth is the column width every cell is right-aligned to: the
// longest literal, so fractions and exponents widen the column. Keywords
// count as numbers of the same length (true 1234, false 12345, null 1234,
// undefined 123456789), so a column fits any of them.
func fieldWidth(cells []cell) int {
	maxWidth, minWidth := 0, 0
	for _, c := range cells {
		w := len(c.text)
		if c.kind == KindNumber && strings.HasPrefix(c.text, "-") {
			minWidth = max(minWidth, w)
		} else {
			maxWidth = max(maxWidth, w)
		}
	}
	return max(maxWidth, minWidth, 1)
}

// fieldsPerLine doubles the number of fields on a line while the line
// still fits in limit. The first field costs fieldWidth+1 columns and every
// further one fieldWidth+3. The result is always a power of two.
func fieldsPerLine(indentWidth, fieldWidth, limit, count int) int {
	n := 1
	for n < count && indentWidth+(fieldWidth+1)+(fieldWidth+3)*(2*n-1) <= limit {
		n *= 2
	}
	return n
}

// writeArrayColumns lays cells out in rows of right-aligned fields.
func (s *serializer) writeArrayColumns(cells []cell, fw int, indent string) {
	perLine := fieldsPerLine(column(indent), fw, s.width, len(cells))
	for i := 0; i < len(cells); {
		s.prefix(true, renderCtx{indent: indent, index: i})
		for j := 0; j < perLine && i < len(cells); j++ {
			w := fw
			if j > 0 {
				w += 2
			}
			c := cells[i]
			for pad := w - len(c.text); pad > 0; pad-- {
				s.buf = append(s.buf, ' ')
			}
			m := s.st.Number
			if c.kind != KindNumber {
				m = s.st.Keyword
			}
			s.buf = m.append(s.buf, c.text)
			s.buf = append(s.buf, ',')
			i++
		}
		s.buf = append(s.buf, '\n')
	}
}
