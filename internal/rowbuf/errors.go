package rowbuf

import "errors"

var (
	// ErrOutOfRange reports a column, start index, count or width outside
	// the valid range. Callers get the error, never a clamped result.
	ErrOutOfRange = errors.New("rowbuf: index out of range")

	// ErrRowTooWide reports that a requested width exceeds MaxRowWidth.
	// It stands in for storage exhaustion: growth is refused up front
	// instead of failing mid-mutation.
	ErrRowTooWide = errors.New("rowbuf: row width exceeds limit")
)

// MaxRowWidth caps how wide a single row may grow.
const MaxRowWidth = 0x7fff
