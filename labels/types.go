package labels

import "errors"

// Sentinel errors for the labels package.
var (
	// ErrDuplicateRow indicates that a byte-identical row is already present
	// in the Builder; Add rejects it without reordering existing rows.
	ErrDuplicateRow = errors.New("labels: duplicate row")

	// ErrColumnCount indicates a row was added whose width does not match
	// the number of declared column names.
	ErrColumnCount = errors.New("labels: row width does not match column count")

	// ErrNoColumns indicates a Builder was created with zero column names.
	ErrNoColumns = errors.New("labels: at least one column is required")

	// ErrIndexOutOfRange indicates Row was called with an out-of-bounds index.
	ErrIndexOutOfRange = errors.New("labels: row index out of range")
)

// Labels is an ordered, duplicate-free sequence of fixed-width integer
// rows with named columns. Row order is insertion order; it never changes
// after construction. Position is O(1) amortised via a hash index built
// once at Finish.
type Labels struct {
	names []string
	rows  [][]int64
	index map[string]int // encoded row -> insertion index
}

// Names returns the column names, in declaration order.
func (l *Labels) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)

	return out
}

// Count returns the number of rows.
func (l *Labels) Count() int {
	return len(l.rows)
}

// NumColumns returns the number of columns.
func (l *Labels) NumColumns() int {
	return len(l.names)
}

// Row returns a copy of the row at index i, or ErrIndexOutOfRange.
func (l *Labels) Row(i int) ([]int64, error) {
	if i < 0 || i >= len(l.rows) {
		return nil, ErrIndexOutOfRange
	}
	row := make([]int64, len(l.rows[i]))
	copy(row, l.rows[i])

	return row, nil
}

// Position returns the insertion index of row, and whether it was found.
// Complexity: O(len(row)) to encode the lookup key, O(1) amortised after.
func (l *Labels) Position(row ...int64) (int, bool) {
	if l == nil || l.index == nil {
		return 0, false
	}
	idx, ok := l.index[encodeRow(row)]

	return idx, ok
}

// Equal reports whether two Labels have identical column names and an
// identical row sequence (same values, same order). A nil Labels is equal
// only to another nil Labels.
func (l *Labels) Equal(other *Labels) bool {
	if l == nil || other == nil {
		return l == other
	}
	if len(l.names) != len(other.names) {
		return false
	}
	for i, n := range l.names {
		if other.names[i] != n {
			return false
		}
	}
	if len(l.rows) != len(other.rows) {
		return false
	}
	for i, row := range l.rows {
		orow := other.rows[i]
		if len(row) != len(orow) {
			return false
		}
		for j, v := range row {
			if orow[j] != v {
				return false
			}
		}
	}

	return true
}

// Rows iterates rows in insertion order, calling fn(index, row) for each.
// row is the Labels' own stored row, not a copy: fn must not modify it or
// retain it beyond the call.
func (l *Labels) Rows(fn func(i int, row []int64)) {
	for i, row := range l.rows {
		fn(i, row)
	}
}

func encodeRow(row []int64) string {
	// A comma-terminated textual encoding avoids accidental collisions
	// between e.g. [1, 23] and [12, 3].
	buf := make([]byte, 0, len(row)*8)
	for _, v := range row {
		buf = appendInt64(buf, v)
		buf = append(buf, ',')
	}

	return string(buf)
}

func appendInt64(buf []byte, v int64) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	if v == 0 {
		return append(buf, '0')
	}
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}
