package objfmt

// Marker is a pair of strings written immediately before and after a
// literal. Both are empty by default.
type Marker struct {
	Begin string
	End   string
}

// Styles holds one Marker per literal category. The markers are opaque to
// the renderer; they typically carry ANSI colour sequences or markup tags.
type Styles struct {
	String  Marker
	Key     Marker
	Number  Marker
	Keyword Marker // true, false, null, undefined, <cycle>
	Label   Marker // type labels such as Map, Set, Date
	Bracket Marker
}

func (m Marker) append(buf []byte, text string) []byte {
	buf = append(buf, m.Begin...)
	buf = append(buf, text...)
	return append(buf, m.End...)
}

func (m Marker) appendBytes(buf, text []byte) []byte {
	buf = append(buf, m.Begin...)
	buf = append(buf, text...)
	return append(buf, m.End...)
}

func (m Marker) wrap(text string) string {
	if m.Begin == "" && m.End == "" {
		return text
	}
	return m.Begin + text + m.End
}
