package keys

import "golang.org/x/exp/slices"

// rowSet is the same ordered-set-then-sort pattern used in the samples
// package: O(1) membership via a map, but output order always comes from
// an explicit sort, never map iteration.
type rowSet struct {
	seen map[string]struct{}
	rows [][]int64
}

func newRowSet() *rowSet {
	return &rowSet{seen: make(map[string]struct{})}
}

func (s *rowSet) Add(row ...int64) bool {
	key := encodeRow(row)
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.rows = append(s.rows, append([]int64(nil), row...))

	return true
}

func (s *rowSet) Sorted() [][]int64 {
	out := append([][]int64(nil), s.rows...)
	slices.SortFunc(out, func(a, b []int64) int {
		return compareRows(a, b)
	})

	return out
}

func compareRows(a, b []int64) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return len(a) - len(b)
}

func encodeRow(row []int64) string {
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
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}
