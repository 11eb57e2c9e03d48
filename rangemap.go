// Package rangemap answers stabbing queries over a static collection of
// half-open intervals [start, end): given a point p, which intervals contain
// it. Build compresses the collection into a breakpoint table with a single
// endpoint sweep; Query binary-searches that table, so lookups cost
// O(log n + k) instead of a linear scan.
package rangemap

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// Map is a stabbing-query index over half-open intervals. Intervals are
// identified by their position in the slices passed to Build.
//
// Build fully replaces internal state and must not run concurrently with any
// other call; any number of Query calls may run in parallel against a built
// Map. Callers that rebuild while serving should build a fresh Map and swap
// the reference.
type Map[T cmp.Ordered] struct {
	bounds Bounds[T]
	tab    []T     // strictly increasing breakpoints, tab[0] = Min sentinel
	sets   [][]int // sets[i] = ids covering [tab[i], tab[i+1]), ascending by id
}

// New creates an empty Map over the domain described by b.
func New[T cmp.Ordered](b Bounds[T]) *Map[T] {
	return &Map[T]{bounds: b}
}

// Build indexes the intervals [starts[i], ends[i]). The interval count is
// min(len(starts), len(ends)); nil slices index zero intervals. Intervals
// with start == end are degenerate (they contain no point) and are dropped,
// keeping their position so surviving ids still refer to the input slices.
// Build never fails and is idempotent for equal input.
func (m *Map[T]) Build(starts, ends []T) {
	n := min(len(starts), len(ends))

	// Argsort by start and by end, filtering degenerate intervals.
	byStart := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if starts[i] != ends[i] {
			byStart = append(byStart, i)
		}
	}
	byEnd := slices.Clone(byStart)
	sort.Slice(byStart, func(a, b int) bool { return starts[byStart[a]] < starts[byStart[b]] })
	sort.Slice(byEnd, func(a, b int) bool { return ends[byEnd[a]] < ends[byEnd[b]] })

	nf := len(byStart)
	minV := m.bounds.Min()
	m.tab = make([]T, 0, 2*nf+1)
	m.sets = make([][]int, 0, 2*nf+1)

	// Low sentinel catches every point below the lowest start. No high
	// sentinel is needed: the last sweep coordinate is the largest end,
	// its window already extends to +inf and is empty, and appending the
	// domain maximum would only duplicate that empty snapshot.
	if nf == 0 || starts[byStart[0]] > minV {
		m.tab = append(m.tab, minV)
		m.sets = append(m.sets, nil)
	}

	// Merge sweep over the union of start and end coordinates. active is
	// kept sorted by id so snapshots come out in ascending id order.
	var active []int
	i1, i2 := 0, 0
	for i1 < nf || i2 < nf {
		var v T
		if i1 >= nf || (i2 < nf && starts[byStart[i1]] >= ends[byEnd[i2]]) {
			v = ends[byEnd[i2]]
		} else {
			v = starts[byStart[i1]]
		}
		// Open every interval starting at v before closing any ending at v:
		// this is what makes [a, v) stop covering v while [v, b) covers it.
		for i1 < nf && starts[byStart[i1]] == v {
			active = insertID(active, byStart[i1])
			i1++
		}
		for i2 < nf && ends[byEnd[i2]] == v {
			active = removeID(active, byEnd[i2])
			i2++
		}
		// The active set changed by at least one id, so recording every
		// coordinate keeps consecutive snapshots distinct. Empty snapshots
		// stay nil so empty query results are always the nil slice.
		var snap []int
		if len(active) > 0 {
			snap = slices.Clone(active)
		}
		m.tab = append(m.tab, v)
		m.sets = append(m.sets, snap)
	}
}

// Query returns the ids of all intervals containing p, ascending, or an
// empty result if none do or the Map was never built. The returned slice
// aliases internal state: treat it as read-only and do not retain it across
// a Build.
func (m *Map[T]) Query(p T) []int {
	i := sort.Search(len(m.tab), func(i int) bool { return m.tab[i] >= p })
	switch {
	case i == len(m.tab):
		// p at or beyond the largest end; nothing covers it.
		return nil
	case m.tab[i] == p:
		return m.sets[i]
	case i == 0:
		// p below the low sentinel; unreachable for in-domain points.
		return nil
	default:
		return m.sets[i-1]
	}
}

// Len returns the number of breakpoints in the table. A never-built Map
// reports 0; any built Map reports at least 1 (the low sentinel).
func (m *Map[T]) Len() int { return len(m.tab) }

// CheckInvariants verifies the internal tables: breakpoints strictly
// increasing, one snapshot per breakpoint, no two consecutive snapshots
// equal, and the final window empty. A non-nil error means a bug in the
// sweep, not bad caller input.
func (m *Map[T]) CheckInvariants() error {
	if len(m.tab) != len(m.sets) {
		return fmt.Errorf("rangemap: %d breakpoints but %d snapshots", len(m.tab), len(m.sets))
	}
	for i := 1; i < len(m.tab); i++ {
		if m.tab[i-1] >= m.tab[i] {
			return fmt.Errorf("rangemap: breakpoints not increasing at %d: %v >= %v", i, m.tab[i-1], m.tab[i])
		}
		if slices.Equal(m.sets[i-1], m.sets[i]) {
			return fmt.Errorf("rangemap: consecutive snapshots equal at %d", i)
		}
	}
	if n := len(m.sets); n > 0 && len(m.sets[n-1]) != 0 {
		return fmt.Errorf("rangemap: final window not empty: %v", m.sets[n-1])
	}
	return nil
}

// insertID inserts id into the sorted slice, preserving order.
func insertID(s []int, id int) []int {
	i := sort.SearchInts(s, id)
	return slices.Insert(s, i, id)
}

// removeID removes id from the sorted slice if present.
func removeID(s []int, id int) []int {
	i := sort.SearchInts(s, id)
	if i < len(s) && s[i] == id {
		return slices.Delete(s, i, i+1)
	}
	return s
}
