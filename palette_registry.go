package objfmt

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/objfmt/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteJQ,
	"jq":               ansi.PaletteJQ,
	"classic":          ansi.PaletteClassic,
	"tokyo-night":      ansi.PaletteTokyoNight,
	"doom-nord":        ansi.PaletteDoomNord,
	"gruvbox-light":    ansi.PaletteGruvboxLight,
	"synthwave84":      ansi.PaletteSynthwave84,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// StylesFor returns ANSI colour markers for the named palette. An empty name
// selects the default palette and "none" yields empty markers.
func StylesFor(name string) (Styles, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = paletteDefaultName
	}
	if name == paletteNoneName {
		return Styles{}, nil
	}
	ap, ok := paletteRegistry[name]
	if !ok {
		return Styles{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	return stylesFromAnsi(ap), nil
}

func stylesFromAnsi(ap ansi.Palette) Styles {
	marker := func(seq string) Marker {
		if seq == "" {
			return Marker{}
		}
		return Marker{Begin: seq, End: ansi.Reset}
	}
	bracket := ap.Bracket
	if bracket == "" {
		bracket = ap.Keyword
	}
	return Styles{
		String:  marker(ap.String),
		Key:     marker(ap.Key),
		Number:  marker(ap.Number),
		Keyword: marker(ap.Keyword),
		Label:   marker(ap.Label),
		Bracket: marker(bracket),
	}
}
