package objfmt

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind is the rendering variant of a value.
type Kind uint8

const (
	KindNull Kind = iota
	KindUndefined
	KindBoolean
	KindNumber
	KindBigInt
	KindString
	KindDate
	KindFunc
	KindList
	KindRecord
	KindMap
	KindSet
)

var kindNames = [...]string{
	KindNull:      "null",
	KindUndefined: "undefined",
	KindBoolean:   "boolean",
	KindNumber:    "number",
	KindBigInt:    "bigint",
	KindString:    "string",
	KindDate:      "date",
	KindFunc:      "function",
	KindList:      "list",
	KindRecord:    "record",
	KindMap:       "map",
	KindSet:       "set",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Composite reports whether values of this kind have members.
func (k Kind) Composite() bool {
	return k >= KindList
}

// KindOf classifies v the way Format would with opts.
func KindOf(v any, opts *Options) Kind {
	var s serializer
	s.configure(opts)
	return s.classify(v, true).kind
}

const (
	cycleLiteral = "<cycle>"
	dateLayout   = "2006-01-02T15:04:05.000Z"
)

var bigIntType = reflect.TypeOf(big.Int{})

// identity tells composites apart for cycle detection. Slices sharing a
// backing array differ by length.
type identity struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// member is one element of a composite: a list item, a record field
// (name) or a map entry (key).
type member struct {
	name  string
	key   any
	value any
}

// matchKey is what members are matched on when reordering against a
// reference value.
func (m member) matchKey(kind Kind) (any, bool) {
	if kind == KindRecord {
		return m.name, true
	}
	if m.key == nil || !reflect.ValueOf(m.key).Comparable() {
		return nil, false
	}
	return m.key, true
}

// node is a classified value.
type node struct {
	kind  Kind
	label string
	// text is the literal of a scalar; raw text for strings.
	text    string
	members []member
	id      identity
	hasID   bool
}

func (s *serializer) classify(v any, allowPlain bool) node {
	if allowPlain && !s.noPlain {
		if p, ok := v.(PlainFormer); ok && !isNilPointer(v) && !s.skipsPlainForm(typeName(v)) {
			v = p.PlainForm()
		}
	}
	switch x := v.(type) {
	case nil:
		return node{kind: KindNull, text: "null"}
	case undefined:
		return node{kind: KindUndefined, text: "undefined"}
	case bool:
		return node{kind: KindBoolean, text: strconv.FormatBool(x)}
	case string:
		return node{kind: KindString, text: x}
	case json.Number:
		return node{kind: KindNumber, text: string(x)}
	case int:
		return node{kind: KindNumber, text: strconv.Itoa(x)}
	case int64:
		return node{kind: KindNumber, text: strconv.FormatInt(x, 10)}
	case float64:
		return node{kind: KindNumber, text: formatFloat(x, 64)}
	case time.Time:
		return node{kind: KindDate, text: x.UTC().Format(dateLayout)}
	case *big.Int:
		if x == nil {
			return node{kind: KindNull, text: "null"}
		}
		return node{kind: KindBigInt, text: x.String() + "n"}
	case *big.Float:
		if x == nil {
			return node{kind: KindNull, text: "null"}
		}
		return node{kind: KindNumber, text: x.Text('g', -1)}
	case *Record:
		if x == nil {
			return node{kind: KindNull, text: "null"}
		}
		n := node{kind: KindRecord, label: x.Type, id: pointerID(x), hasID: true}
		n.members = make([]member, 0, len(x.Fields))
		for _, f := range x.Fields {
			if f.Hidden && !s.includeHidden {
				continue
			}
			n.members = append(n.members, member{name: f.Key, value: f.Value})
		}
		return n
	case *Map:
		if x == nil {
			return node{kind: KindNull, text: "null"}
		}
		n := node{kind: KindMap, label: "Map", id: pointerID(x), hasID: true}
		n.members = make([]member, len(x.entries))
		for i, e := range x.entries {
			n.members[i] = member{key: e.Key, value: e.Value}
		}
		return n
	case *Set:
		if x == nil {
			return node{kind: KindNull, text: "null"}
		}
		n := node{kind: KindSet, label: "Set", id: pointerID(x), hasID: true}
		n.members = make([]member, len(x.items))
		for i, it := range x.items {
			n.members[i] = member{value: it}
		}
		return n
	}
	return s.classifyReflect(reflect.ValueOf(v))
}

func (s *serializer) classifyReflect(rv reflect.Value) node {
	switch rv.Kind() {
	case reflect.Invalid:
		return node{kind: KindNull, text: "null"}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return node{kind: KindNull, text: "null"}
		}
		elem := rv.Elem()
		if !elem.CanInterface() {
			return node{kind: KindNull, text: "null"}
		}
		n := s.classify(elem.Interface(), false)
		if rv.Kind() == reflect.Pointer && n.kind.Composite() && !n.hasID {
			n.id, n.hasID = identity{ptr: rv.Pointer(), typ: rv.Type()}, true
		}
		return n
	case reflect.Bool:
		return node{kind: KindBoolean, text: strconv.FormatBool(rv.Bool())}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return node{kind: KindNumber, text: strconv.FormatInt(rv.Int(), 10)}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return node{kind: KindNumber, text: strconv.FormatUint(rv.Uint(), 10)}
	case reflect.Float32:
		return node{kind: KindNumber, text: formatFloat(rv.Float(), 32)}
	case reflect.Float64:
		return node{kind: KindNumber, text: formatFloat(rv.Float(), 64)}
	case reflect.Complex64, reflect.Complex128:
		return node{kind: KindNumber, text: strconv.FormatComplex(rv.Complex(), 'g', -1, 128)}
	case reflect.String:
		return node{kind: KindString, text: rv.String()}
	case reflect.Func:
		if rv.IsNil() {
			return node{kind: KindNull, text: "null"}
		}
		text := "Function"
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil && fn.Name() != "" {
			text += " " + fn.Name()
		}
		return node{kind: KindFunc, text: text}
	case reflect.Chan, reflect.UnsafePointer:
		return node{kind: KindFunc, text: "<" + rv.Type().String() + ">"}
	case reflect.Slice:
		if rv.IsNil() {
			return node{kind: KindNull, text: "null"}
		}
		n := listNode(rv)
		if rv.Len() > 0 {
			n.id, n.hasID = identity{ptr: rv.Pointer(), len: rv.Len(), typ: rv.Type()}, true
		}
		return n
	case reflect.Array:
		return listNode(rv)
	case reflect.Map:
		if rv.IsNil() {
			return node{kind: KindNull, text: "null"}
		}
		return s.mapNode(rv)
	case reflect.Struct:
		if rv.Type() == bigIntType {
			b := rv.Interface().(big.Int)
			return node{kind: KindBigInt, text: b.String() + "n"}
		}
		return s.structNode(rv)
	}
	return node{kind: KindString, text: fmt.Sprint(rv.Interface())}
}

func listNode(rv reflect.Value) node {
	n := node{kind: KindList, label: rv.Type().Name()}
	n.members = make([]member, rv.Len())
	for i := range n.members {
		n.members[i] = member{value: rv.Index(i).Interface()}
	}
	return n
}

// mapNode turns a Go map into a record (string keys) or an associative map.
// Go maps are unordered, so keys are sorted to keep the output stable.
func (s *serializer) mapNode(rv reflect.Value) node {
	t := rv.Type()
	keys := rv.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool { return lessValue(keys[i], keys[j]) })
	n := node{label: t.Name(), id: identity{ptr: rv.Pointer(), typ: t}, hasID: true}
	n.members = make([]member, len(keys))
	if t.Key().Kind() == reflect.String {
		n.kind = KindRecord
		for i, k := range keys {
			n.members[i] = member{name: k.String(), value: rv.MapIndex(k).Interface()}
		}
		return n
	}
	n.kind = KindMap
	if n.label == "" {
		n.label = "Map"
	}
	for i, k := range keys {
		n.members[i] = member{key: k.Interface(), value: rv.MapIndex(k).Interface()}
	}
	return n
}

// structNode lists the exported fields of a struct in declaration order.
// The objfmt tag renames a field ("name"), drops it ("-") or marks it
// hidden (",hidden").
func (s *serializer) structNode(rv reflect.Value) node {
	t := rv.Type()
	n := node{kind: KindRecord, label: t.Name()}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, flags, _ := strings.Cut(f.Tag.Get("objfmt"), ",")
		if name == "-" && flags == "" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if flags == "hidden" && !s.includeHidden {
			continue
		}
		n.members = append(n.members, member{name: name, value: rv.Field(i).Interface()})
	}
	return n
}

func lessValue(a, b reflect.Value) bool {
	a, b = concrete(a), concrete(b)
	if !a.IsValid() || !b.IsValid() {
		return !a.IsValid() && b.IsValid()
	}
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}

func concrete(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}

func pointerID(p any) identity {
	rv := reflect.ValueOf(p)
	return identity{ptr: rv.Pointer(), typ: rv.Type()}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// typeName is the declared name of v's type, pointers stripped.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

// reorder puts the members shared with ref first, in ref's order, then the
// remaining members in their own order. It also returns, per member, the
// corresponding reference value (nil when there is none).
func reorder(kind Kind, ms []member, refKind Kind, ref []member) ([]member, []any) {
	own := make(map[any]int, len(ms))
	for i, m := range ms {
		if k, ok := m.matchKey(kind); ok {
			own[k] = i
		}
	}
	out := make([]member, 0, len(ms))
	refs := make([]any, 0, len(ms))
	used := make([]bool, len(ms))
	for _, r := range ref {
		k, ok := r.matchKey(refKind)
		if !ok {
			continue
		}
		if i, found := own[k]; found && !used[i] {
			used[i] = true
			out = append(out, ms[i])
			refs = append(refs, r.value)
		}
	}
	for i, m := range ms {
		if !used[i] {
			out = append(out, m)
			refs = append(refs, nil)
		}
	}
	return out, refs
}

// formatFloat renders f the way ECMAScript prints numbers: shortest
// round-trip digits, exponent form below 1e-6 and from 1e21 up.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
