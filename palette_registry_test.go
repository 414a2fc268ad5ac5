package objfmt

import (
	"slices"
	"strings"
	"testing"

	"pkt.systems/objfmt/internal/ansi"
)

func TestPaletteNames(t *testing.T) {
	names := PaletteNames()
	if !slices.IsSorted(names) {
		t.Fatalf("palette names are not sorted: %v", names)
	}
	for _, want := range []string{"default", "none", "jq", "tokyo-night"} {
		if !slices.Contains(names, want) {
			t.Fatalf("missing palette %q in %v", want, names)
		}
	}
}

func TestStylesFor(t *testing.T) {
	st, err := StylesFor("")
	if err != nil {
		t.Fatalf("default palette: %v", err)
	}
	if st.Key.Begin != ansi.PaletteJQ.Key || st.Key.End != ansi.Reset {
		t.Fatalf("unexpected default key marker %q", st.Key)
	}

	none, err := StylesFor("NONE")
	if err != nil || none != (Styles{}) {
		t.Fatalf("expected empty styles for none, got %+v (%v)", none, err)
	}

	if _, err := StylesFor("nope"); err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected unknown palette error, got %v", err)
	}

	for _, name := range PaletteNames() {
		st, err := StylesFor(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if name != "none" && st.String.Begin == "" {
			t.Fatalf("%s: string literals are not coloured", name)
		}
	}
}

func TestStylesFor_ColoursOutput(t *testing.T) {
	opts := *DefaultOptions
	st, err := StylesFor("classic")
	if err != nil {
		t.Fatalf("classic palette: %v", err)
	}
	opts.Styles = st
	out := Format(rec("k", "v"), &opts)
	if !strings.Contains(out, ansi.Cyan+"k"+ansi.Reset+":") {
		t.Fatalf("expected a coloured key in %q", out)
	}
	if !strings.Contains(out, ansi.Green+`"v"`+ansi.Reset) {
		t.Fatalf("expected a coloured string in %q", out)
	}
}
