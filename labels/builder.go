package labels

// Builder accumulates rows for a single Labels value. A Builder is not
// safe for concurrent use; build one Labels per goroutine.
type Builder struct {
	names []string
	rows  [][]int64
	seen  map[string]struct{} // membership only, never iterated for output
}

// NewBuilder starts a Builder over the given column names.
func NewBuilder(names ...string) *Builder {
	b := &Builder{
		names: append([]string(nil), names...),
		seen:  make(map[string]struct{}),
	}

	return b
}

// Add appends row to the builder. It fails with ErrColumnCount if the row
// width disagrees with the declared columns, or ErrDuplicateRow if a
// byte-identical row is already present. On either error the builder is
// left unchanged.
func (b *Builder) Add(row ...int64) error {
	if len(row) != len(b.names) {
		return ErrColumnCount
	}
	key := encodeRow(row)
	if _, dup := b.seen[key]; dup {
		return ErrDuplicateRow
	}
	b.seen[key] = struct{}{}
	stored := make([]int64, len(row))
	copy(stored, row)
	b.rows = append(b.rows, stored)

	return nil
}

// Count returns the number of rows added so far.
func (b *Builder) Count() int {
	return len(b.rows)
}

// Finish freezes the builder into an immutable Labels, building the O(1)
// position index. The Builder remains usable afterwards (Finish may be
// called more than once, each producing an independent Labels snapshot).
func (b *Builder) Finish() *Labels {
	l := &Labels{
		names: append([]string(nil), b.names...),
		rows:  make([][]int64, len(b.rows)),
		index: make(map[string]int, len(b.rows)),
	}
	for i, row := range b.rows {
		stored := make([]int64, len(row))
		copy(stored, row)
		l.rows[i] = stored
		l.index[encodeRow(row)] = i
	}

	return l
}

// Empty returns a zero-row Labels over the given column names. Useful for
// E5-style empty blocks (cutoff below any bond distance) that must still
// be valid, fully-shaped Labels rather than a nil pointer.
func Empty(names ...string) *Labels {
	return NewBuilder(names...).Finish()
}

// Single returns a one-column Labels with one row per value, a convenience
// used for component axes such as the pair_direction labels ([0], [1], [2]).
func Single(name string, values ...int64) *Labels {
	b := NewBuilder(name)
	for _, v := range values {
		// Values here are always distinct by construction (0,1,2 style
		// component indices); ignore a theoretical duplicate error since
		// callers only ever pass distinct indices.
		_ = b.Add(v)
	}

	return b.Finish()
}
