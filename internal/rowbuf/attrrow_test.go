package rowbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attrsFg(fg string) Attributes {
	a := DefaultAttributes()
	a.Fg = fg
	return a
}

// totalLength sums the run lengths; must always equal the width.
func (a *AttrRow) totalLength() int {
	total := 0
	for _, run := range a.runs {
		total += run.length
	}
	return total
}

// checkMerged fails if two adjacent runs share an attribute.
func checkMerged(t *testing.T, a *AttrRow) {
	t.Helper()
	for i := 1; i < len(a.runs); i++ {
		if a.runs[i].attrs == a.runs[i-1].attrs {
			t.Fatalf("runs %d and %d not merged: %+v", i-1, i, a.runs)
		}
	}
}

func TestAttrRowConstruction(t *testing.T) {
	fill := attrsFg("blue")
	a := newAttrRow(10, fill)

	assert.Equal(t, 10, a.Width())
	assert.Equal(t, 1, a.runCount())
	for col := 0; col < 10; col++ {
		got, err := a.AttrAt(col)
		require.NoError(t, err)
		assert.Equal(t, fill, got)
	}
}

func TestAttrRowOutOfRange(t *testing.T) {
	a := newAttrRow(3, DefaultAttributes())

	for _, col := range []int{-1, 3, 5} {
		_, err := a.AttrAt(col)
		assert.ErrorIs(t, err, ErrOutOfRange, "col %d", col)
		assert.ErrorIs(t, a.SetAttr(col, attrsFg("red")), ErrOutOfRange, "col %d", col)
	}
}

func TestAttrRowSetAttrSplitsAndMerges(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		writes   []int // columns painted red on a default row
		wantRuns int
	}{
		{"middle column splits into three", 10, []int{4}, 3},
		{"first column splits into two", 10, []int{0}, 2},
		{"last column splits into two", 10, []int{9}, 2},
		{"adjacent writes coalesce", 10, []int{4, 5, 6}, 3},
		{"full row collapses to one run", 3, []int{0, 1, 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAttrRow(tt.width, DefaultAttributes())
			red := attrsFg("red")
			for _, col := range tt.writes {
				require.NoError(t, a.SetAttr(col, red))
			}
			assert.Equal(t, tt.wantRuns, a.runCount())
			assert.Equal(t, tt.width, a.totalLength())
			checkMerged(t, &a)
			for _, col := range tt.writes {
				got, err := a.AttrAt(col)
				require.NoError(t, err)
				assert.Equal(t, red, got)
			}
		})
	}
}

func TestAttrRowSetAttrSameValueIsNoop(t *testing.T) {
	a := newAttrRow(5, DefaultAttributes())
	require.NoError(t, a.SetAttr(2, DefaultAttributes()))
	assert.Equal(t, 1, a.runCount())
}

func TestAttrRowReset(t *testing.T) {
	a := newAttrRow(8, DefaultAttributes())
	require.NoError(t, a.SetAttr(1, attrsFg("red")))
	require.NoError(t, a.SetAttr(5, attrsFg("green")))

	cyan := attrsFg("cyan")
	require.NoError(t, a.Reset(cyan))

	assert.Equal(t, 1, a.runCount())
	assert.Equal(t, 8, a.totalLength())
	got, err := a.AttrAt(7)
	require.NoError(t, err)
	assert.Equal(t, cyan, got)
}

func TestAttrRowResizeGrowExtendsLastRun(t *testing.T) {
	a := newAttrRow(5, DefaultAttributes())
	require.NoError(t, a.SetAttr(4, attrsFg("red")))
	require.Equal(t, 2, a.runCount())

	a.resize(9)

	assert.Equal(t, 9, a.Width())
	assert.Equal(t, 9, a.totalLength())
	assert.Equal(t, 2, a.runCount())
	got, err := a.AttrAt(8)
	require.NoError(t, err)
	assert.Equal(t, attrsFg("red"), got)
	checkMerged(t, &a)
}

func TestAttrRowResizeShrinkTrimsRuns(t *testing.T) {
	a := newAttrRow(10, DefaultAttributes())
	require.NoError(t, a.SetAttr(3, attrsFg("red")))
	require.NoError(t, a.SetAttr(8, attrsFg("green")))

	a.resize(6)

	assert.Equal(t, 6, a.Width())
	assert.Equal(t, 6, a.totalLength())
	checkMerged(t, &a)
	got, err := a.AttrAt(3)
	require.NoError(t, err)
	assert.Equal(t, attrsFg("red"), got)
	_, err = a.AttrAt(6)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAttrRowResizeShrinkOnRunBoundary(t *testing.T) {
	a := newAttrRow(10, DefaultAttributes())
	require.NoError(t, a.SetAttr(5, attrsFg("red")))

	// New width lands exactly on the end of the first run.
	a.resize(5)

	assert.Equal(t, 5, a.totalLength())
	assert.Equal(t, 1, a.runCount())
}

func TestAttrRowIterator(t *testing.T) {
	a := newAttrRow(6, DefaultAttributes())
	red := attrsFg("red")
	require.NoError(t, a.SetAttr(2, red))
	require.NoError(t, a.SetAttr(3, red))

	it, err := a.Iter(0)
	require.NoError(t, err)

	want := []Attributes{
		DefaultAttributes(), DefaultAttributes(), red, red,
		DefaultAttributes(), DefaultAttributes(),
	}
	for col, expected := range want {
		got, ok := it.Next()
		require.True(t, ok, "col %d", col)
		assert.Equal(t, expected, got, "col %d", col)
	}
	_, ok := it.Next()
	assert.False(t, ok, "iterator must stop at row end")
}

func TestAttrRowIteratorFromOffset(t *testing.T) {
	a := newAttrRow(5, DefaultAttributes())
	red := attrsFg("red")
	require.NoError(t, a.SetAttr(3, red))

	it, err := a.Iter(3)
	require.NoError(t, err)

	got, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, red, got)
	got, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, DefaultAttributes(), got)
	_, ok = it.Next()
	assert.False(t, ok)

	_, err = a.Iter(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
