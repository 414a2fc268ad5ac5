// Package load decodes JSON and YAML documents into values objfmt renders
// with their original key order.
package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"pkt.systems/jpact"
	"pkt.systems/objfmt"
)

// MaxNestedJSONDepth bounds how deep Options.Unwrap decodes JSON that
// appears inside string values. 0 still unwraps one level.
var MaxNestedJSONDepth = 10

// Options controls decoding.
type Options struct {
	// Unwrap decodes strings that hold a JSON object or array.
	Unwrap bool
}

// JSON decodes every JSON document in r. Objects become *objfmt.Record
// values in source order and numbers stay json.Number.
func JSON(r io.Reader, opts Options) ([]any, error) {
	dec := json.NewDecoder(r)
	var docs []any
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return docs, fmt.Errorf("decode json: %w", err)
		}
		v, err := decodeOrdered(raw)
		if err != nil {
			return docs, err
		}
		if opts.Unwrap {
			depth := MaxNestedJSONDepth
			if depth <= 0 {
				depth = 1
			}
			v = unwrapNested(v, depth)
		}
		docs = append(docs, v)
	}
}

func decodeOrdered(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: trailing data after value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		rec := objfmt.NewRecord("")
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", kt)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			rec.Set(key, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return rec, nil
	case '[':
		items := []any{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}

// unwrapNested replaces JSON-looking strings with their decoded value.
func unwrapNested(v any, depth int) any {
	switch x := v.(type) {
	case *objfmt.Record:
		for i := range x.Fields {
			x.Fields[i].Value = unwrapNested(x.Fields[i].Value, depth)
		}
		return x
	case []any:
		for i, vv := range x {
			x[i] = unwrapNested(vv, depth)
		}
		return x
	case string:
		if depth > 0 {
			if parsed, ok := tryParseInlineJSON(x, depth-1); ok {
				return parsed
			}
		}
		return x
	default:
		return x
	}
}

func tryParseInlineJSON(s string, nextDepth int) (any, bool) {
	b := strings.TrimSpace(s)
	if len(b) < 2 {
		return nil, false
	}
	first, last := b[0], b[len(b)-1]
	if !((first == '{' && last == '}') || (first == '[' && last == ']')) {
		return nil, false
	}
	// Malformed documents stay strings.
	var compact bytes.Buffer
	if err := jpact.CompactWriter(&compact, strings.NewReader(b), 0); err != nil {
		return nil, false
	}
	v, err := decodeOrdered(compact.Bytes())
	if err != nil {
		return nil, false
	}
	return unwrapNested(v, nextDepth), true
}

// YAML decodes every document in data. Mappings keep their source order:
// all-string keys become *objfmt.Record, anything else *objfmt.Map.
func YAML(data []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.UseOrderedMap())
	var docs []any
	for {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return docs, fmt.Errorf("decode yaml: %w", err)
		}
		docs = append(docs, fromYAML(v))
	}
}

func fromYAML(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		stringKeys := true
		for _, item := range x {
			if _, ok := item.Key.(string); !ok {
				stringKeys = false
				break
			}
		}
		if stringKeys {
			rec := objfmt.NewRecord("")
			for _, item := range x {
				rec.Set(item.Key.(string), fromYAML(item.Value))
			}
			return rec
		}
		m := objfmt.NewMap()
		for _, item := range x {
			m.Set(fromYAML(item.Key), fromYAML(item.Value))
		}
		return m
	case []any:
		for i, vv := range x {
			x[i] = fromYAML(vv)
		}
		return x
	case map[string]any:
		for k, vv := range x {
			x[k] = fromYAML(vv)
		}
		return x
	default:
		return x
	}
}
