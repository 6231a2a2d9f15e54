package rowbuf

// attrRun is one maximal span of columns sharing an attribute.
type attrRun struct {
	attrs  Attributes
	length int
}

// AttrRow is the run-length-encoded attribute store for one row. Two
// invariants hold after every mutation: run lengths sum to the row width,
// and adjacent runs never carry equal attributes.
type AttrRow struct {
	runs  []attrRun
	width int
}

func newAttrRow(width int, fill Attributes) AttrRow {
	return AttrRow{
		runs:  []attrRun{{attrs: fill, length: width}},
		width: width,
	}
}

func (a *AttrRow) Width() int {
	return a.width
}

// AttrAt decodes the attribute covering the given column. Run counts stay
// small (one per attribute change), so a linear scan is fine.
func (a *AttrRow) AttrAt(column int) (Attributes, error) {
	if column < 0 || column >= a.width {
		return Attributes{}, ErrOutOfRange
	}
	covered := 0
	for _, run := range a.runs {
		covered += run.length
		if column < covered {
			return run.attrs, nil
		}
	}
	// Unreachable while the length invariant holds.
	return Attributes{}, ErrOutOfRange
}

// Reset replaces all runs with a single run of attr spanning the width.
func (a *AttrRow) Reset(attr Attributes) error {
	a.runs = a.runs[:0]
	a.runs = append(a.runs, attrRun{attrs: attr, length: a.width})
	return nil
}

// resize extends the last run when growing and trims runs from the tail
// when shrinking. Width validation happens in Row before this is called.
func (a *AttrRow) resize(newWidth int) {
	if newWidth == a.width {
		return
	}
	if newWidth > a.width {
		a.runs[len(a.runs)-1].length += newWidth - a.width
		a.width = newWidth
		return
	}
	covered := 0
	for i, run := range a.runs {
		if covered+run.length >= newWidth {
			a.runs = a.runs[:i+1]
			a.runs[i].length = newWidth - covered
			break
		}
		covered += run.length
	}
	a.width = newWidth
}

// SetAttr paints a single column, splitting the covering run as needed and
// re-merging with equal neighbors so the merge invariant survives.
func (a *AttrRow) SetAttr(column int, attr Attributes) error {
	if column < 0 || column >= a.width {
		return ErrOutOfRange
	}
	covered := 0
	for i, run := range a.runs {
		if column >= covered+run.length {
			covered += run.length
			continue
		}
		if run.attrs == attr {
			return nil
		}
		offset := column - covered
		replaced := make([]attrRun, 0, 3)
		if offset > 0 {
			replaced = append(replaced, attrRun{attrs: run.attrs, length: offset})
		}
		replaced = append(replaced, attrRun{attrs: attr, length: 1})
		if tail := run.length - offset - 1; tail > 0 {
			replaced = append(replaced, attrRun{attrs: run.attrs, length: tail})
		}
		runs := make([]attrRun, 0, len(a.runs)+2)
		runs = append(runs, a.runs[:i]...)
		runs = append(runs, replaced...)
		runs = append(runs, a.runs[i+1:]...)
		a.runs = mergeRuns(runs)
		return nil
	}
	return ErrOutOfRange
}

// mergeRuns coalesces adjacent runs with equal attributes in place.
func mergeRuns(runs []attrRun) []attrRun {
	merged := runs[:1]
	for _, run := range runs[1:] {
		last := &merged[len(merged)-1]
		if run.attrs == last.attrs {
			last.length += run.length
			continue
		}
		merged = append(merged, run)
	}
	return merged
}

func (a *AttrRow) runCount() int {
	return len(a.runs)
}

// AttrIter walks per-column attributes in column order without re-decoding
// the run list for every column.
type AttrIter struct {
	runs      []attrRun
	runIdx    int
	remaining int
}

// Iter positions an iterator at the given start column.
func (a *AttrRow) Iter(start int) (*AttrIter, error) {
	if start < 0 || start >= a.width {
		return nil, ErrOutOfRange
	}
	covered := 0
	for i, run := range a.runs {
		if start < covered+run.length {
			return &AttrIter{
				runs:      a.runs,
				runIdx:    i,
				remaining: covered + run.length - start,
			}, nil
		}
		covered += run.length
	}
	return nil, ErrOutOfRange
}

// Next yields the next column's attribute; ok is false past the row end.
// Mutating the AttrRow invalidates the iterator.
func (it *AttrIter) Next() (Attributes, bool) {
	for it.runIdx < len(it.runs) && it.remaining == 0 {
		it.runIdx++
		if it.runIdx < len(it.runs) {
			it.remaining = it.runs[it.runIdx].length
		}
	}
	if it.runIdx >= len(it.runs) {
		return Attributes{}, false
	}
	it.remaining--
	return it.runs[it.runIdx].attrs, true
}
