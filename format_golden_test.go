package objfmt

import (
	"regexp"
	"strings"
	"testing"
)

type Class0 struct{}

type Class1 struct {
	Prop0 string `objfmt:"prop0"`
	Prop1 int    `objfmt:"prop1"`
}

type CustomArray []any

// rec builds a *Record from alternating keys and values.
func rec(kv ...any) *Record {
	r := NewRecord("")
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i].(string), kv[i+1])
	}
	return r
}

type goldenCase struct {
	name  string
	value any
	setup func(*Options)
	want  string
}

func withWidth(n int) func(*Options) {
	return func(o *Options) { o.PreferLineWidth = n }
}

func withFolding(n int) func(*Options) {
	return func(o *Options) {
		o.PreferLineWidth = n
		o.LongStringAsBlock = true
	}
}

var tabAfterText = regexp.MustCompile(`\S\t`)

// expandGolden rewrites a tab indented golden text for an indent of n
// spaces. A tab right after text stands for the shorter first-member
// indent used by Horstmann style.
func expandGolden(golden string, n int) string {
	golden = strings.Trim(golden, "\n")
	if n < 0 || n > 10 {
		return golden
	}
	short := ""
	if n > 0 {
		short = strings.Repeat(" ", n-1)
	}
	golden = tabAfterText.ReplaceAllStringFunc(golden, func(m string) string {
		return m[:len(m)-1] + short
	})
	return strings.ReplaceAll(golden, "\t", strings.Repeat(" ", n))
}

func runGolden(t *testing.T, style IndentStyle, cases []goldenCase) {
	t.Helper()
	for _, width := range []int{-1, 0, 1, 3, 4, 8, 9, 10, 11} {
		for _, tc := range cases {
			opts := *DefaultOptions
			opts.Indent = IndentWidth(width)
			opts.Style = style
			if tc.setup != nil {
				tc.setup(&opts)
			}
			// Width sensitive cases assume a nesting level is 4 columns.
			if opts.PreferLineWidth != DefaultPreferLineWidth && width != -1 && width != 4 && width != 11 {
				continue
			}
			want := expandGolden(tc.want, width)
			if got := Format(tc.value, &opts); got != want {
				t.Errorf("%s/%s (indent %d): unexpected output\nexpected:\n%q\nactual:\n%q", style, tc.name, width, want, got)
			}
		}
	}
}

var sharedCases = []goldenCase{
	{name: "null", value: nil, want: `null`},
	{name: "undefined", value: Undefined, want: `undefined`},
	{name: "string", value: "Text", want: `"Text"`},
	{name: "empty list", value: []any{}, want: `[]`},
	{name: "empty record", value: rec(), want: `{}`},
	{name: "quote default", value: `Quote is: "`, want: `"Quote is: \""`},
	{name: "quote apos", value: `Quote is: "`, setup: func(o *Options) { o.AllowApos = true }, want: `'Quote is: "'`},
	{name: "quote backtick", value: `Quote is: "`, setup: func(o *Options) { o.AllowBacktick = true }, want: "`Quote is: \"`"},
	{
		name:  "quote apos before backtick",
		value: `Quote is: "`,
		setup: func(o *Options) {
			o.AllowApos = true
			o.AllowBacktick = true
		},
		want: `'Quote is: "'`,
	},
}

func TestFormatKR(t *testing.T) {
	cases := append([]goldenCase{
		{name: "one key", value: rec("a", 1), want: `
{
	a: 1,
}`},
		{name: "two keys", value: rec("a", 10, "b", 11), want: `
{
	a: 10,
	b: 11,
}`},
		{name: "empty member", value: rec("a", 10, "b", []any{}), want: `
{
	a: 10,
	b: [],
}`},
		{name: "empty labelled member", value: rec("a", 10, "b", CustomArray{}), want: `
{
	a: 10,
	b: CustomArray [],
}`},
		{name: "nested list", value: rec("a", 10, "b", []any{"b"}), want: `
{
	a: 10,
	b: [
		"b",
	],
}`},
		{name: "nested lists", value: rec("a", 10, "b", []any{[]any{}, []any{"b0", "b1"}}), want: `
{
	a: 10,
	b: [
		[],
		[
			"b0",
			"b1",
		],
	],
}`},
		{name: "labelled list", value: rec("a", 10, "b", CustomArray{"b"}), want: `
{
	a: 10,
	b: CustomArray [
		"b",
	],
}`},
		{name: "empty struct", value: rec("a", 10, "b", []any{"b", Class0{}}), want: `
{
	a: 10,
	b: [
		"b",
		Class0 {},
	],
}`},
		{name: "struct", value: rec("a", 10, "b", []any{"b", Class1{"val0", 123}}), want: `
{
	a: 10,
	b: [
		"b",
		Class1 {
			prop0: "val0",
			prop1: 123,
		},
	],
}`},
		{name: "escaped keys", value: rec("*", 1, "\x00\x1b😀", "\x00\x1b😀"), want: `
{
	"*": 1,
	"\x00\x1B😀": "\x00\x1B😀",
}`},
		{name: "pack 13", value: rec("arr", []int{1, 2, 3, 4, 5}), setup: withWidth(13), want: `
{
	arr: [
		1,
		2,
		3,
		4,
		5,
	],
}`},
		{name: "pack 14", value: rec("arr", []int{1, 2, 3, 4, 5}), setup: withWidth(14), want: `
{
	arr: [
		1,  2,
		3,  4,
		5,
	],
}`},
		{name: "pack 21", value: rec("arr", []int{1, 2, 3, 4, 5}), setup: withWidth(21), want: `
{
	arr: [
		1,  2,
		3,  4,
		5,
	],
}`},
		{name: "pack 22", value: rec("arr", []int{1, 2, 3, 4, 5}), setup: withWidth(22), want: `
{
	arr: [
		1,  2,  3,  4,
		5,
	],
}`},
		{name: "struct quote", value: Class1{`Quote is: "`, 123}, want: `
Class1 {
	prop0: "Quote is: \"",
	prop1: 123,
}`},
		{name: "short string", value: rec("str", "12345"), setup: withFolding(17), want: `
{
	str: "12345",
}`},
		{name: "long string", value: rec("str", "123456"), setup: withFolding(17), want: `
{
	str: String {
		123456
	},
}`},
		{
			name: "set and maps",
			value: rec(
				"set", NewSet("one", "two"),
				"map", NewMap(MapEntry{"one", 1}, MapEntry{"two", 2}),
				"map2", NewMap(MapEntry{rec("key", "one"), 1}, MapEntry{rec("key", "two"), 2}),
			),
			want: `
{
	set: Set [
		"one",
		"two",
	],
	map: Map {
		"one" => 1,
		"two" => 2,
	},
	map2: Map {
		{
			key: "one",
		} => 1,

		{
			key: "two",
		} => 2,
	},
}`,
		},
		{name: "fold measures raw key", value: rec("a&b", "a<b", "c", "a&b a<b"), setup: withFolding(16), want: `
{
	"a&b": "a<b",
	c: String {
		a&b a<b
	},
}`},
		{
			name:  "html",
			value: rec("a&b", "a<b", "c", "a&b a<b"),
			setup: func(o *Options) {
				withFolding(18)(o)
				o.HTML = true
			},
			want: `
{
	"a&amp;b": "a&lt;b",
	c: String {
		a&amp;b a&lt;b
	},
}`,
		},
	}, sharedCases...)
	runGolden(t, KR, cases)
}

func TestFormatAllman(t *testing.T) {
	cases := append([]goldenCase{
		{name: "one key", value: rec("a", 1), want: `
{
	a: 1,
}`},
		{name: "empty member", value: rec("a", 10, "b", []any{}), want: `
{
	a: 10,
	b: [],
}`},
		{name: "empty labelled member", value: rec("a", 10, "b", CustomArray{}), want: `
{
	a: 10,
	b: CustomArray [],
}`},
		{name: "nested list", value: rec("a", 10, "b", []any{"b"}), want: `
{
	a: 10,
	b:
	[
		"b",
	],
}`},
		{name: "nested lists", value: rec("a", 10, "b", []any{[]any{}, []any{"b0", "b1"}}), want: `
{
	a: 10,
	b:
	[
		[],
		[
			"b0",
			"b1",
		],
	],
}`},
		{name: "labelled list", value: rec("a", 10, "b", CustomArray{"b"}), want: `
{
	a: 10,
	b: CustomArray
	[
		"b",
	],
}`},
		{name: "empty struct", value: rec("a", 10, "b", []any{"b", Class0{}}), want: `
{
	a: 10,
	b:
	[
		"b",
		Class0 {},
	],
}`},
		{name: "struct", value: rec("a", 10, "b", []any{"b", Class1{"val0", 123}}), want: `
{
	a: 10,
	b:
	[
		"b",
		Class1
		{
			prop0: "val0",
			prop1: 123,
		},
	],
}`},
		{name: "quoted key", value: rec("*", 1), want: `
{
	"*": 1,
}`},
		{name: "long string", value: rec("str", "123456"), setup: withFolding(17), want: `
{
	str: String
	{
		123456
	},
}`},
	}, sharedCases...)
	runGolden(t, Allman, cases)
}

func TestFormatHorstmann(t *testing.T) {
	cases := append([]goldenCase{
		{name: "one key", value: rec("a", 1), want: `
{	a: 1,
}`},
		{name: "two keys", value: rec("a", 10, "b", 11), want: `
{	a: 10,
	b: 11,
}`},
		{name: "empty member", value: rec("a", 10, "b", []any{}), want: `
{	a: 10,
	b: [],
}`},
		{name: "empty labelled member", value: rec("a", 10, "b", CustomArray{}), want: `
{	a: 10,
	b: CustomArray [],
}`},
		{name: "nested list", value: rec("a", 10, "b", []any{"b"}), want: `
{	a: 10,
	b:
	[	"b",
	],
}`},
		{name: "nested lists", value: rec("a", 10, "b", []any{[]any{}, []any{"b0", "b1"}}), want: `
{	a: 10,
	b:
	[	[],
		[	"b0",
			"b1",
		],
	],
}`},
		{name: "labelled list", value: rec("a", 10, "b", CustomArray{"b"}), want: `
{	a: 10,
	b: CustomArray
	[	"b",
	],
}`},
		{name: "empty struct", value: rec("a", 10, "b", []any{"b", Class0{}}), want: `
{	a: 10,
	b:
	[	"b",
		Class0 {},
	],
}`},
		{name: "struct", value: rec("a", 10, "b", []any{"b", Class1{"val0", 123}}), want: `
{	a: 10,
	b:
	[	"b",
		Class1
		{	prop0: "val0",
			prop1: 123,
		},
	],
}`},
		{name: "escaped keys", value: rec("*", 1, "\x00\x1b😀", "\x00\x1b😀"), want: `
{	"*": 1,
	"\x00\x1B😀": "\x00\x1B😀",
}`},
		{name: "pack 13", value: rec("arr", []int{1, 2, 3, 4, 5}), setup: withWidth(13), want: `
{	arr:
	[	1,
		2,
		3,
		4,
		5,
	],
}`},
		{name: "pack 14", value: rec("arr", []int{1, 2, 3, 4, 5}), setup: withWidth(14), want: `
{	arr:
	[	1,  2,
		3,  4,
		5,
	],
}`},
		{name: "pack 22", value: rec("arr", []int{1, 2, 3, 4, 5}), setup: withWidth(22), want: `
{	arr:
	[	1,  2,  3,  4,
		5,
	],
}`},
		{name: "struct quote", value: Class1{`Quote is: "`, 123}, want: `
Class1
{	prop0: "Quote is: \"",
	prop1: 123,
}`},
		{name: "short string", value: rec("str", "12345"), setup: withFolding(17), want: `
{	str: "12345",
}`},
		{name: "long string", value: rec("str", "123456"), setup: withFolding(17), want: `
{	str: String
	{	123456
	},
}`},
	}, sharedCases...)
	runGolden(t, Horstmann, cases)
}
