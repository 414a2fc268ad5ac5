package objfmt

// walk renders v depth-first. ref, when not nil, supplies the member order.
func (s *serializer) walk(v, ref any, c renderCtx) {
	n := s.classify(v, true)
	if !n.kind.Composite() {
		s.writeScalar(n, c)
		return
	}
	if n.hasID {
		if _, seen := s.path[n.id]; seen {
			s.writeLeaf(s.st.Keyword.wrap(cycleLiteral), c)
			return
		}
		if s.path == nil {
			s.path = make(map[identity]struct{})
		}
		s.path[n.id] = struct{}{}
		defer delete(s.path, n.id)
	}

	members := n.members
	var refs []any
	if ref != nil {
		members, refs = s.membersFor(n, ref)
	}

	next := s.begin(n.kind, len(members), n.label, c)
	switch n.kind {
	case KindList, KindSet:
		if cells, ok := s.packCells(members); ok {
			s.writeArrayColumns(cells, fieldWidth(cells), next)
			break
		}
		for i, m := range members {
			s.walk(m.value, refAt(refs, i), renderCtx{indent: next, index: i})
		}
	case KindRecord:
		for i, m := range members {
			s.walk(m.value, refAt(refs, i), renderCtx{indent: next, index: i, key: s.recordKey(m.name)})
		}
	case KindMap:
		s.walkMapEntries(members, refs, next)
	}
	s.end(n.kind, len(members), c)
}

// membersFor applies the reference value's order to n's members.
func (s *serializer) membersFor(n node, ref any) ([]member, []any) {
	rn := s.classify(ref, true)
	switch n.kind {
	case KindRecord, KindMap:
		if rn.kind == KindRecord || rn.kind == KindMap {
			return reorder(n.kind, n.members, rn.kind, rn.members)
		}
	default:
		if rn.kind == KindList || rn.kind == KindSet {
			refs := make([]any, len(rn.members))
			for i, m := range rn.members {
				refs[i] = m.value
			}
			return n.members, refs
		}
	}
	return n.members, nil
}

func refAt(refs []any, i int) any {
	if i < len(refs) {
		return refs[i]
	}
	return nil
}

// walkMapEntries writes `key => value` entries. Composite keys are rendered
// as nested values, and then every entry is followed by a blank line.
func (s *serializer) walkMapEntries(members []member, refs []any, indent string) {
	keys := make([]node, len(members))
	spaced := false
	for i, m := range members {
		keys[i] = s.classify(m.key, true)
		spaced = spaced || keys[i].kind.Composite()
	}
	for i, m := range members {
		c := renderCtx{indent: indent, index: i}
		if keys[i].kind.Composite() {
			s.walk(m.key, nil, renderCtx{indent: indent, index: i, open: true})
			c.key = label{text: s.separator(), width: 4, cont: true}
		} else {
			lit, w := s.literal(keys[i])
			c.key = label{text: lit + s.separator(), width: w + 4}
		}
		s.walk(m.value, refAt(refs, i), c)
		if spaced && i < len(members)-1 {
			s.buf = append(s.buf, '\n')
		}
	}
}

func (s *serializer) writeScalar(n node, c renderCtx) {
	if n.kind == KindString {
		s.writeString(n.text, c)
		return
	}
	lit, _ := s.literal(n)
	s.writeLeaf(lit, c)
}

// literal returns the styled literal of a scalar and its visible width.
func (s *serializer) literal(n node) (string, int) {
	var text string
	var m Marker
	switch n.kind {
	case KindString:
		text = s.q.quote(n.text)
		return s.st.String.wrap(text), displayWidth(text)
	case KindDate:
		text = s.q.quote(n.text)
		return s.st.Label.wrap("Date") + " " + s.st.String.wrap(text), 5 + len(text)
	case KindNumber, KindBigInt:
		text, m = n.text, s.st.Number
	case KindFunc:
		text, m = n.text, s.st.Label
	default:
		text, m = n.text, s.st.Keyword
	}
	return m.wrap(text), displayWidth(text)
}
