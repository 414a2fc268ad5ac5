package objfmt

import "reflect"

// Undefined is the "no value" singleton. It renders as the keyword
// undefined, distinct from nil which renders as null.
var Undefined = undefined{}

type undefined struct{}

// PlainFormer is implemented by values that prefer to be rendered through
// a simpler stand-in. The result of PlainForm is classified in place of the
// receiver, unless Options.NoPlainForm or Options.NoPlainFormFor say
// otherwise.
type PlainFormer interface {
	PlainForm() any
}

// Field is a single member of a Record.
type Field struct {
	Key   string
	Value any
	// Hidden members are skipped unless Options.IncludeHidden is set.
	Hidden bool
}

// Record is an ordered keyed record. Fields render in insertion order and
// Type, when not empty, is printed as the record's label.
type Record struct {
	Type   string
	Fields []Field
}

// NewRecord returns an empty record labelled typeName ("" for none).
func NewRecord(typeName string) *Record {
	return &Record{Type: typeName}
}

// Set assigns key, keeping the original position of an existing key.
func (r *Record) Set(key string, value any) *Record {
	return r.set(key, value, false)
}

// SetHidden is Set for a non-enumerable member.
func (r *Record) SetHidden(key string, value any) *Record {
	return r.set(key, value, true)
}

func (r *Record) set(key string, value any, hidden bool) *Record {
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			r.Fields[i].Value = value
			r.Fields[i].Hidden = hidden
			return r
		}
	}
	r.Fields = append(r.Fields, Field{Key: key, Value: value, Hidden: hidden})
	return r
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the record's keys in order, hidden ones included.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Len reports the number of fields.
func (r *Record) Len() int { return len(r.Fields) }

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key   any
	Value any
}

// Map is an insertion-ordered associative map whose keys may be any value.
// Keys are matched with == when their dynamic type is comparable; other
// keys are always appended.
type Map struct {
	entries []MapEntry
}

// NewMap returns a Map holding the given entries in order.
func NewMap(entries ...MapEntry) *Map {
	m := &Map{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set assigns key, keeping the original position of an existing key.
func (m *Map) Set(key, value any) *Map {
	for i := range m.entries {
		if sameKey(m.entries[i].Key, key) {
			m.entries[i].Value = value
			return m
		}
	}
	m.entries = append(m.entries, MapEntry{Key: key, Value: value})
	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key any) (any, bool) {
	for _, e := range m.entries {
		if sameKey(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Entries returns the entries in insertion order.
func (m *Map) Entries() []MapEntry { return m.entries }

// Len reports the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Set is an insertion-ordered collection of distinct values.
type Set struct {
	items []any
}

// NewSet returns a Set of items with duplicates dropped.
func NewSet(items ...any) *Set {
	s := &Set{}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add appends item unless an equal item is already present.
func (s *Set) Add(item any) *Set {
	if !s.Has(item) {
		s.items = append(s.items, item)
	}
	return s
}

// Has reports whether item is a member.
func (s *Set) Has(item any) bool {
	for _, it := range s.items {
		if sameKey(it, item) {
			return true
		}
	}
	return false
}

// Items returns the members in insertion order.
func (s *Set) Items() []any { return s.items }

// Len reports the number of members.
func (s *Set) Len() int { return len(s.items) }

func sameKey(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
