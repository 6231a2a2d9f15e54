package rowbuf

// Attributes holds the color and style of a single cell.
// All fields are comparable so attribute runs can be merged with ==.
type Attributes struct {
	Fg            string // Foreground color ("default", "red", etc.)
	Bg            string // Background color
	Bold          bool
	Italics       bool
	Underscore    bool
	Strikethrough bool
	Reverse       bool
	Blink         bool
}

func DefaultAttributes() Attributes {
	return Attributes{
		Fg: "default",
		Bg: "default",
	}
}
