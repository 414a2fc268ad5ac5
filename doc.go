// Package objfmt renders arbitrary Go values as indented, human-readable
// text in the spirit of a JSON dump, tuned for reading rather than parsing.
//
// Records print with bare identifier keys, containers carry their type
// name, numeric arrays are packed into right-aligned columns, and strings
// pick the quote character that needs the fewest escapes:
//
//	out := objfmt.Format(map[string]any{"a": 10, "b": []int{}}, nil)
//	// {
//	//     a: 10,
//	//     b: [],
//	// }
//
// Options.Style switches between K&R, Allman and Horstmann bracket
// placement. Options.PreferLineWidth bounds how many numbers share a line
// and, with Options.LongStringAsBlock, when a long string is printed as a
// raw text block instead of a quoted literal.
//
// Go maps have no order, so their keys are sorted. Use *Record and *Map
// for insertion order, and FormatIndent with a reference value to print a
// value in the member order of another one:
//
//	before := objfmt.Format(old, nil)
//	after := objfmt.FormatIndent(cur, nil, "", old)
//
// Styles inserts caller supplied markers around every literal category;
// StylesFor builds them from a named ANSI palette.
package objfmt
