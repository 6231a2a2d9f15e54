package rowbuf

// blankGlyph fills cleared and freshly allocated cells.
const blankGlyph = ' '

// charCell is one slot of the glyph/width store. A cell flagged overflow
// keeps its codepoints in the owning buffer's grapheme store instead of r.
type charCell struct {
	r        rune
	width    WidthTag
	overflow bool
}

func blankCell() charCell {
	return charCell{r: blankGlyph, width: WidthNarrow}
}

// CharRow stores the glyph and width classification for every cell of a
// row. It never diverges from the attribute store's width; Row resizes the
// two together. Invariant: a WidthLead cell is always immediately followed
// by a WidthTrail cell.
type CharRow struct {
	cells []charCell
	row   *Row
}

func newCharRow(width int, row *Row) CharRow {
	c := CharRow{
		cells: make([]charCell, width),
		row:   row,
	}
	for i := range c.cells {
		c.cells[i] = blankCell()
	}
	return c
}

func (c *CharRow) Size() int {
	return len(c.cells)
}

// GlyphAt resolves the glyph at column. Overflow cells are looked up in the
// owning buffer's grapheme store; trailing halves resolve to nil since the
// lead cell owns the codepoints.
func (c *CharRow) GlyphAt(column int) ([]rune, error) {
	if column < 0 || column >= len(c.cells) {
		return nil, ErrOutOfRange
	}
	cell := c.cells[column]
	if cell.width == WidthTrail {
		return nil, nil
	}
	if cell.overflow {
		if glyph, ok := c.row.graphemes.Resolve(c.row.id, column); ok {
			return glyph, nil
		}
		return []rune{blankGlyph}, nil
	}
	return []rune{cell.r}, nil
}

func (c *CharRow) WidthTagAt(column int) (WidthTag, error) {
	if column < 0 || column >= len(c.cells) {
		return WidthNarrow, ErrOutOfRange
	}
	return c.cells[column].width, nil
}

// ClearCell blanks the cell at column. Clearing either half of a
// double-width pair clears both halves, so no orphaned half survives.
func (c *CharRow) ClearCell(column int) error {
	if column < 0 || column >= len(c.cells) {
		return ErrOutOfRange
	}
	c.clearCellAt(column)
	return nil
}

func (c *CharRow) clearCellAt(column int) {
	switch c.cells[column].width {
	case WidthTrail:
		if column > 0 {
			c.blankOut(column - 1)
		}
	case WidthLead:
		if column+1 < len(c.cells) {
			c.blankOut(column + 1)
		}
	}
	c.blankOut(column)
}

func (c *CharRow) blankOut(column int) {
	if c.cells[column].overflow {
		c.row.graphemes.Erase(c.row.id, column)
	}
	c.cells[column] = blankCell()
}

// Reset fills the row with blanks and drops every overflow entry recorded
// under the row's id.
func (c *CharRow) Reset() {
	c.row.graphemes.EraseRow(c.row.id)
	for i := range c.cells {
		c.cells[i] = blankCell()
	}
}

// resize grows with blank cells or truncates. A pair severed by the new
// boundary does not leave its lead behind: the surviving half is blanked
// back to narrow. Width validation happens in Row before this is called.
func (c *CharRow) resize(newWidth int) {
	if newWidth == len(c.cells) {
		return
	}
	if newWidth < len(c.cells) {
		for col := newWidth; col < len(c.cells); col++ {
			if c.cells[col].overflow {
				c.row.graphemes.Erase(c.row.id, col)
			}
		}
		c.cells = c.cells[:newWidth]
		if newWidth > 0 && c.cells[newWidth-1].width == WidthLead {
			c.blankOut(newWidth - 1)
		}
		return
	}
	for len(c.cells) < newWidth {
		c.cells = append(c.cells, blankCell())
	}
}

func (c *CharRow) setNarrow(column int, r rune) {
	c.clearOverlap(column)
	c.cells[column] = charCell{r: r, width: WidthNarrow}
}

// setWidePair writes a double-width glyph at column and marks column+1 as
// its trailing half. The caller guarantees column+1 is in range.
func (c *CharRow) setWidePair(column int, r rune) {
	c.clearOverlap(column)
	c.clearOverlap(column + 1)
	c.cells[column] = charCell{r: r, width: WidthLead}
	c.cells[column+1] = charCell{width: WidthTrail}
}

// setOverflow marks the cell as stored out-of-line and records the glyph in
// the grapheme store under (row id, column).
func (c *CharRow) setOverflow(column int, glyph []rune, width WidthTag) {
	c.clearOverlap(column)
	c.cells[column] = charCell{width: width, overflow: true}
	c.row.graphemes.Store(c.row.id, column, glyph)
}

// clearOverlap makes the cell safe to overwrite: if it is half of a wide
// pair, the other half is blanked so the pairing invariant holds.
func (c *CharRow) clearOverlap(column int) {
	switch c.cells[column].width {
	case WidthTrail:
		if column > 0 {
			c.blankOut(column - 1)
		}
	case WidthLead:
		if column+1 < len(c.cells) {
			c.blankOut(column + 1)
		}
	}
	if c.cells[column].overflow {
		c.row.graphemes.Erase(c.row.id, column)
	}
}

// Text renders the row as displayed: trailing halves contribute nothing and
// overflow glyphs expand to their full codepoint sequence.
func (c *CharRow) Text() string {
	runes := make([]rune, 0, len(c.cells))
	for col, cell := range c.cells {
		if cell.width == WidthTrail {
			continue
		}
		if cell.overflow {
			if glyph, ok := c.row.graphemes.Resolve(c.row.id, col); ok {
				runes = append(runes, glyph...)
				continue
			}
			runes = append(runes, blankGlyph)
			continue
		}
		runes = append(runes, cell.r)
	}
	return string(runes)
}
