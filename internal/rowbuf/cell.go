package rowbuf

// WidthTag classifies how a cell participates in double-width rendering.
type WidthTag int

const (
	WidthNarrow WidthTag = iota // ordinary single-column glyph
	WidthLead                   // first half of a double-width glyph
	WidthTrail                  // second half, carries no glyph of its own
)

func (w WidthTag) String() string {
	switch w {
	case WidthLead:
		return "lead"
	case WidthTrail:
		return "trail"
	default:
		return "narrow"
	}
}

// Cell is a read-only snapshot of one column: the resolved glyph (all of
// its codepoints), the width classification, and the decoded attribute.
// Trailing halves carry a nil Glyph; the lead cell owns the codepoints.
type Cell struct {
	Glyph []rune
	Width WidthTag
	Attrs Attributes
}

// IsBlank reports whether the cell holds the default blank glyph.
func (c Cell) IsBlank() bool {
	return c.Width == WidthNarrow && len(c.Glyph) == 1 && c.Glyph[0] == blankGlyph
}
