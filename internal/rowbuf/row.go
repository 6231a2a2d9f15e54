// Package rowbuf stores terminal screen rows: per-cell glyphs with
// double-width classification, run-length-encoded attributes, and a
// buffer-wide registry for glyphs that need more than one codepoint.
package rowbuf

import (
	runewidth "github.com/mattn/go-runewidth"
)

// Row is one line of a terminal buffer: a glyph/width store and an
// attribute run store that always share the same width, plus the logical
// id the owning buffer assigned to this row. Rows are resized and reset in
// place; the object identity never changes while the buffer lives.
//
// A row is mutated only by its owning buffer; there is no internal locking.
type Row struct {
	id        int
	width     int
	charRow   CharRow
	attrRow   AttrRow
	graphemes GraphemeStorage
}

// NewRow builds a row of the given width with every cell blank and painted
// with fill. graphemes is the overflow capability of the owning buffer; nil
// means overflow glyphs are dropped.
func NewRow(id, width int, fill Attributes, graphemes GraphemeStorage) (*Row, error) {
	if width <= 0 {
		return nil, ErrOutOfRange
	}
	if width > MaxRowWidth {
		return nil, ErrRowTooWide
	}
	if graphemes == nil {
		graphemes = noopGraphemes{}
	}
	r := &Row{
		id:        id,
		width:     width,
		graphemes: graphemes,
	}
	r.charRow = newCharRow(width, r)
	r.attrRow = newAttrRow(width, fill)
	return r, nil
}

func (r *Row) Size() int {
	return r.width
}

func (r *Row) ID() int {
	return r.id
}

// SetID renumbers the row. Overflow entries are keyed by id, so the owning
// buffer must erase stale entries before reusing an id.
func (r *Row) SetID(id int) {
	r.id = id
}

// Reset blanks every glyph and repaints the whole row with attr. The glyph
// store is cleared unconditionally; if the attribute reset ever fails the
// row is still safely blank.
func (r *Row) Reset(attr Attributes) error {
	r.charRow.Reset()
	return r.attrRow.Reset(attr)
}

// Resize changes the row width. Validation happens before either store is
// touched, so the two can never end up with different widths.
func (r *Row) Resize(newWidth int) error {
	if newWidth <= 0 {
		return ErrOutOfRange
	}
	if newWidth > MaxRowWidth {
		return ErrRowTooWide
	}
	if newWidth == r.width {
		return nil
	}
	r.charRow.resize(newWidth)
	r.attrRow.resize(newWidth)
	r.width = newWidth
	return nil
}

// ClearColumn blanks the glyph at column. The attribute is left alone so
// erased text keeps its painted background.
func (r *Row) ClearColumn(column int) error {
	if column < 0 || column >= r.width {
		return ErrOutOfRange
	}
	return r.charRow.ClearCell(column)
}

// Text renders the row as displayed, one visual glyph per wide pair.
func (r *Row) Text() string {
	return r.charRow.Text()
}

// AttrAt decodes the attribute at column.
func (r *Row) AttrAt(column int) (Attributes, error) {
	return r.attrRow.AttrAt(column)
}

// WidthTagAt reports the width classification at column.
func (r *Row) WidthTagAt(column int) (WidthTag, error) {
	return r.charRow.WidthTagAt(column)
}

// At snapshots a single cell.
func (r *Row) At(column int) (Cell, error) {
	glyph, err := r.charRow.GlyphAt(column)
	if err != nil {
		return Cell{}, err
	}
	tag, err := r.charRow.WidthTagAt(column)
	if err != nil {
		return Cell{}, err
	}
	attrs, err := r.attrRow.AttrAt(column)
	if err != nil {
		return Cell{}, err
	}
	return Cell{Glyph: glyph, Width: tag, Attrs: attrs}, nil
}

// AsCells snapshots the whole row.
func (r *Row) AsCells() []Cell {
	cells, _ := r.AsCellsRange(0, r.width)
	return cells
}

// AsCellsFrom snapshots the row from startIndex to the end.
func (r *Row) AsCellsFrom(startIndex int) ([]Cell, error) {
	if startIndex < 0 || startIndex >= r.width {
		return nil, ErrOutOfRange
	}
	return r.AsCellsRange(startIndex, r.width-startIndex)
}

// AsCellsRange snapshots count cells starting at startIndex. The range must
// lie entirely inside the row.
func (r *Row) AsCellsRange(startIndex, count int) ([]Cell, error) {
	if startIndex < 0 || startIndex >= r.width || count < 0 || startIndex+count > r.width {
		return nil, ErrOutOfRange
	}
	if count == 0 {
		return []Cell{}, nil
	}
	it, err := r.attrRow.Iter(startIndex)
	if err != nil {
		return nil, err
	}
	cells := make([]Cell, 0, count)
	for i := 0; i < count; i++ {
		column := startIndex + i
		glyph, err := r.charRow.GlyphAt(column)
		if err != nil {
			return nil, err
		}
		tag, err := r.charRow.WidthTagAt(column)
		if err != nil {
			return nil, err
		}
		attrs, ok := it.Next()
		if !ok {
			return nil, ErrOutOfRange
		}
		cells = append(cells, Cell{Glyph: glyph, Width: tag, Attrs: attrs})
	}
	return cells, nil
}

// WriteString writes s into the row starting at column, classifying each
// rune with go-runewidth: width 2 takes a lead/trail pair, width 1 a narrow
// cell, width 0 (combining marks) attaches to the previously written glyph
// through the grapheme store. Writing stops at the row edge, or before a
// wide glyph that no longer fits. Returns the column after the last write.
func (r *Row) WriteString(column int, s string, attrs Attributes) (int, error) {
	if column < 0 || column >= r.width {
		return 0, ErrOutOfRange
	}
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		switch {
		case w == 0:
			r.combineWithPrevious(column, ch)
			continue
		case column+w > r.width:
			return column, nil
		case w == 2:
			r.charRow.setWidePair(column, ch)
		default:
			r.charRow.setNarrow(column, ch)
		}
		for i := 0; i < w; i++ {
			if err := r.attrRow.SetAttr(column+i, attrs); err != nil {
				return column, err
			}
		}
		column += w
	}
	return column, nil
}

// combineWithPrevious appends a zero-width rune to the glyph written just
// before column, promoting that cell to overflow storage. With no previous
// glyph on this row the mark is dropped, matching how overwritten
// continuation cells are handled elsewhere.
func (r *Row) combineWithPrevious(column int, mark rune) {
	prev := column - 1
	if prev < 0 {
		return
	}
	if tag, _ := r.charRow.WidthTagAt(prev); tag == WidthTrail {
		prev--
		if prev < 0 {
			return
		}
	}
	glyph, err := r.charRow.GlyphAt(prev)
	if err != nil || len(glyph) == 0 || glyph[0] == blankGlyph {
		return
	}
	tag, _ := r.charRow.WidthTagAt(prev)
	combined := make([]rune, 0, len(glyph)+1)
	combined = append(combined, glyph...)
	combined = append(combined, mark)
	r.setOverflowCell(prev, combined, tag)
}

// setOverflowCell stores a multi-codepoint glyph at column. Wide overflow
// glyphs keep their trailing half.
func (r *Row) setOverflowCell(column int, glyph []rune, tag WidthTag) {
	r.charRow.setOverflow(column, glyph, tag)
	if tag == WidthLead && column+1 < r.width {
		r.charRow.cells[column+1] = charCell{width: WidthTrail}
	}
}
