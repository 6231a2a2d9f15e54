package rowbuf

// GraphemeStorage is the capability a row needs from its owning buffer to
// handle glyphs that do not fit a single rune slot (combining sequences).
// Entries are keyed by the row's logical id, not by the row object, so a
// buffer that reuses an id when scrolling must erase stale entries first.
type GraphemeStorage interface {
	Resolve(id, col int) ([]rune, bool)
	Store(id, col int, glyph []rune)
	Erase(id, col int)
	EraseRow(id int)
}

// GraphemeKey addresses one overflow glyph inside a GraphemeStore.
type GraphemeKey struct {
	RowID int
	Col   int
}

// GraphemeStore is the buffer-wide overflow registry. It is not safe for
// concurrent use; the owning buffer serializes access like it does for rows.
type GraphemeStore struct {
	entries map[GraphemeKey][]rune
}

func NewGraphemeStore() *GraphemeStore {
	return &GraphemeStore{entries: make(map[GraphemeKey][]rune)}
}

func (g *GraphemeStore) Resolve(id, col int) ([]rune, bool) {
	glyph, ok := g.entries[GraphemeKey{RowID: id, Col: col}]
	return glyph, ok
}

func (g *GraphemeStore) Store(id, col int, glyph []rune) {
	stored := make([]rune, len(glyph))
	copy(stored, glyph)
	g.entries[GraphemeKey{RowID: id, Col: col}] = stored
}

func (g *GraphemeStore) Erase(id, col int) {
	delete(g.entries, GraphemeKey{RowID: id, Col: col})
}

// EraseRow drops every entry recorded under the given row id.
func (g *GraphemeStore) EraseRow(id int) {
	for key := range g.entries {
		if key.RowID == id {
			delete(g.entries, key)
		}
	}
}

func (g *GraphemeStore) Len() int {
	return len(g.entries)
}

// noopGraphemes backs rows constructed without an owning buffer. Overflow
// glyphs written to such a row are simply dropped.
type noopGraphemes struct{}

func (noopGraphemes) Resolve(id, col int) ([]rune, bool) { return nil, false }
func (noopGraphemes) Store(id, col int, glyph []rune)    {}
func (noopGraphemes) Erase(id, col int)                  {}
func (noopGraphemes) EraseRow(id int)                    {}
