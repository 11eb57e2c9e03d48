// Package source loads interval collections for indexing, from flat TSV
// files or from a DuckDB store.
package source

// Interval is one half-open interval [Start, End) with a caller-supplied
// name. Its position in a loaded slice is the id the index reports.
type Interval struct {
	Name  string
	Start int64
	End   int64
}

// Split returns the parallel start and end slices the index builds from.
func Split(ivs []Interval) (starts, ends []int64) {
	starts = make([]int64, len(ivs))
	ends = make([]int64, len(ivs))
	for i, iv := range ivs {
		starts[i] = iv.Start
		ends[i] = iv.End
	}
	return starts, ends
}
