package rowbuf

import (
	"container/list"
	"strings"

	"github.com/google/uuid"

	"termbuf/internal/logger"
)

// HistoryLine is a detached snapshot of a row that scrolled out. Cells are
// fully resolved, so reuse of the row's id cannot corrupt history.
type HistoryLine struct {
	Text  string
	Cells []Cell
}

// TextBuffer owns a viewport of rows plus the scrollback and the
// buffer-wide grapheme store. All access is expected to be serialized by
// the caller; the buffer serializes nothing itself.
type TextBuffer struct {
	id      uuid.UUID
	columns int
	lines   int
	fill    Attributes

	rows      []*Row
	graphemes *GraphemeStore

	history    *list.List
	maxHistory int

	// Next logical id to hand out when a row is recycled by scrolling.
	nextID int
}

// NewTextBuffer builds a buffer of lines rows, each columns wide, painted
// with fill. maxHistory bounds the scrollback; 0 disables it.
func NewTextBuffer(columns, lines, maxHistory int, fill Attributes) (*TextBuffer, error) {
	if columns <= 0 || lines <= 0 || maxHistory < 0 {
		return nil, ErrOutOfRange
	}
	if columns > MaxRowWidth {
		return nil, ErrRowTooWide
	}
	b := &TextBuffer{
		id:         uuid.New(),
		columns:    columns,
		lines:      lines,
		fill:       fill,
		graphemes:  NewGraphemeStore(),
		history:    list.New(),
		maxHistory: maxHistory,
		nextID:     lines,
	}
	b.rows = make([]*Row, lines)
	for i := range b.rows {
		row, err := NewRow(i, columns, fill, b.graphemes)
		if err != nil {
			return nil, err
		}
		b.rows[i] = row
	}
	logger.Debug("buffer created",
		"buffer", b.id.String(), "columns", columns, "lines", lines)
	return b, nil
}

func (b *TextBuffer) ID() string   { return b.id.String() }
func (b *TextBuffer) Columns() int { return b.columns }
func (b *TextBuffer) Lines() int   { return b.lines }

// Graphemes exposes the buffer-wide overflow registry.
func (b *TextBuffer) Graphemes() *GraphemeStore {
	return b.graphemes
}

// Row returns the row at viewport line y.
func (b *TextBuffer) Row(y int) (*Row, error) {
	if y < 0 || y >= b.lines {
		return nil, ErrOutOfRange
	}
	return b.rows[y], nil
}

// WriteAt writes s into line y starting at column, returning the column
// after the last cell written.
func (b *TextBuffer) WriteAt(y, column int, s string, attrs Attributes) (int, error) {
	row, err := b.Row(y)
	if err != nil {
		return 0, err
	}
	return row.WriteString(column, s, attrs)
}

// ScrollUp pushes the top row into history and recycles the row object as
// a blank bottom row under a fresh id. Stale overflow entries for the
// recycled row are erased before the id is reused.
func (b *TextBuffer) ScrollUp() error {
	top := b.rows[0]
	if b.maxHistory > 0 {
		b.history.PushBack(HistoryLine{
			Text:  top.Text(),
			Cells: top.AsCells(),
		})
		for b.history.Len() > b.maxHistory {
			b.history.Remove(b.history.Front())
		}
	}
	oldID := top.ID()
	b.graphemes.EraseRow(oldID)
	if err := top.Reset(b.fill); err != nil {
		return err
	}
	top.SetID(b.nextID)
	b.nextID++
	copy(b.rows, b.rows[1:])
	b.rows[b.lines-1] = top
	logger.Debug("buffer scrolled",
		"buffer", b.id.String(), "retired", oldID, "assigned", top.ID())
	return nil
}

// Reset blanks every row with attr and clears the scrollback.
func (b *TextBuffer) Reset(attr Attributes) error {
	for _, row := range b.rows {
		if err := row.Reset(attr); err != nil {
			return err
		}
	}
	b.history.Init()
	b.fill = attr
	return nil
}

// Resize changes the viewport geometry. Column validation happens once
// before any row is touched, so a refused width leaves every row intact.
// Shrinking the line count moves the cut bottom rows into history; growing
// appends blank rows.
func (b *TextBuffer) Resize(columns, lines int) error {
	if columns <= 0 || lines <= 0 {
		return ErrOutOfRange
	}
	if columns > MaxRowWidth {
		return ErrRowTooWide
	}
	if columns != b.columns {
		for _, row := range b.rows {
			if err := row.Resize(columns); err != nil {
				return err
			}
		}
		b.columns = columns
	}
	for b.lines > lines {
		bottom := b.rows[b.lines-1]
		if b.maxHistory > 0 {
			b.history.PushBack(HistoryLine{Text: bottom.Text(), Cells: bottom.AsCells()})
			for b.history.Len() > b.maxHistory {
				b.history.Remove(b.history.Front())
			}
		}
		b.graphemes.EraseRow(bottom.ID())
		b.rows = b.rows[:b.lines-1]
		b.lines--
	}
	for b.lines < lines {
		row, err := NewRow(b.nextID, b.columns, b.fill, b.graphemes)
		if err != nil {
			return err
		}
		b.nextID++
		b.rows = append(b.rows, row)
		b.lines++
	}
	logger.Debug("buffer resized",
		"buffer", b.id.String(), "columns", b.columns, "lines", b.lines)
	return nil
}

// Display renders the viewport, one string per line, trailing blanks
// trimmed.
func (b *TextBuffer) Display() []string {
	out := make([]string, b.lines)
	for i, row := range b.rows {
		out[i] = strings.TrimRight(row.Text(), " ")
	}
	return out
}

func (b *TextBuffer) HistorySize() int {
	return b.history.Len()
}

// HistoryText returns the scrollback as displayed text, oldest first.
func (b *TextBuffer) HistoryText() []string {
	out := make([]string, 0, b.history.Len())
	for elem := b.history.Front(); elem != nil; elem = elem.Next() {
		if line, ok := elem.Value.(HistoryLine); ok {
			out = append(out, strings.TrimRight(line.Text, " "))
		}
	}
	return out
}

// History returns the scrollback snapshots, oldest first.
func (b *TextBuffer) History() []HistoryLine {
	out := make([]HistoryLine, 0, b.history.Len())
	for elem := b.history.Front(); elem != nil; elem = elem.Next() {
		if line, ok := elem.Value.(HistoryLine); ok {
			out = append(out, line)
		}
	}
	return out
}
