// Package ansi provides ANSI escape sequences and the colour schemes objfmt
// can wrap around each literal category.
package ansi

// Base ANSI escape codes.
const (
	Reset      = "\x1b[0m"
	Bold       = "\x1b[1m"
	Faint      = "\x1b[90m"
	Green      = "\x1b[32m"
	Yellow     = "\x1b[33m"
	Magenta    = "\x1b[35m"
	Cyan       = "\x1b[36m"
	BrightBlue = "\x1b[1;34m"
)

// Palette assigns a start sequence to every literal category. An empty
// entry leaves that category uncoloured.
type Palette struct {
	Key     string
	String  string
	Number  string
	Keyword string
	Label   string
	Bracket string
}

// PaletteJQ follows jq's default JQ_COLORS; labels borrow the key colour.
var PaletteJQ = Palette{
	Key:     "\x1b[1;34m",
	String:  "\x1b[0;32m",
	Number:  "\x1b[0;39m",
	Keyword: "\x1b[0;90m",
	Label:   "\x1b[1;34m",
	Bracket: "\x1b[1;39m",
}

// PaletteClassic sticks to the 16 basic colours.
var PaletteClassic = Palette{
	Key:     Cyan,
	String:  Green,
	Number:  Magenta,
	Keyword: Yellow,
	Label:   BrightBlue,
	Bracket: Faint,
}

// PaletteTokyoNight uses Tokyo Night's blues and violets.
var PaletteTokyoNight = Palette{
	Key:     "\x1b[38;5;69m",
	String:  "\x1b[38;5;110m",
	Number:  "\x1b[38;5;176m",
	Keyword: "\x1b[38;5;117m",
	Label:   "\x1b[38;5;173m",
	Bracket: "\x1b[38;5;74m",
}

// PaletteDoomNord uses cool glacier blues.
var PaletteDoomNord = Palette{
	Key:     "\x1b[38;5;153m",
	String:  "\x1b[38;5;152m",
	Number:  "\x1b[38;5;109m",
	Keyword: "\x1b[38;5;115m",
	Label:   "\x1b[38;5;179m",
	Bracket: "\x1b[38;5;110m",
}

// PaletteGruvboxLight is meant for light terminal backgrounds.
var PaletteGruvboxLight = Palette{
	Key:     "\x1b[38;5;130m",
	String:  "\x1b[38;5;108m",
	Number:  "\x1b[38;5;66m",
	Keyword: "\x1b[38;5;142m",
	Label:   "\x1b[38;5;167m",
	Bracket: "\x1b[38;5;136m",
}

// PaletteSynthwave84 mixes magentas, cyans and gold.
var PaletteSynthwave84 = Palette{
	Key:     "\x1b[38;5;198m",
	String:  "\x1b[38;5;51m",
	Number:  "\x1b[38;5;207m",
	Keyword: "\x1b[38;5;219m",
	Label:   "\x1b[38;5;220m",
	Bracket: "\x1b[38;5;45m",
}
