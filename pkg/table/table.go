// Package table provides a sparse feature-count table, the typed result
// of SHOGUN runs. Rows are features (taxa, KEGG orthologs, modules or
// pathways), columns are samples.
package table

import "fmt"

// Entry is a non-zero cell of a table.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// FeatureTable is a sparse matrix of counts in coordinate form.
// Feature and sample identifiers are kept verbatim and in source order.
type FeatureTable struct {
	// ID identifies the table.
	ID string
	// Features are row identifiers.
	Features []string
	// Samples are column identifiers.
	Samples []string
	// Entries hold non-zero cells in row-major order.
	Entries []Entry
}

// New creates an empty table with the given identifiers.
func New(id string, features, samples []string) *FeatureTable {
	return &FeatureTable{
		ID:       id,
		Features: features,
		Samples:  samples,
	}
}

// Add appends a cell. Zero values are skipped to keep the table sparse.
func (ft *FeatureTable) Add(row, col int, val float64) error {
	if row < 0 || row >= len(ft.Features) || col < 0 || col >= len(ft.Samples) {
		return fmt.Errorf("cell (%d, %d) is outside of %dx%d table",
			row, col, len(ft.Features), len(ft.Samples))
	}
	if val == 0 {
		return nil
	}
	ft.Entries = append(ft.Entries, Entry{Row: row, Col: col, Value: val})
	return nil
}

// Shape returns numbers of features and samples.
func (ft *FeatureTable) Shape() (int, int) {
	return len(ft.Features), len(ft.Samples)
}

// Get returns the count of a feature in a sample. Unknown identifiers
// give zero.
func (ft *FeatureTable) Get(feature, sample string) float64 {
	for _, e := range ft.Entries {
		if ft.Features[e.Row] == feature && ft.Samples[e.Col] == sample {
			return e.Value
		}
	}
	return 0
}

// Dense returns the table as a full matrix.
func (ft *FeatureTable) Dense() [][]float64 {
	res := make([][]float64, len(ft.Features))
	for i := range res {
		res[i] = make([]float64, len(ft.Samples))
	}
	for _, e := range ft.Entries {
		res[e.Row][e.Col] = e.Value
	}
	return res
}

// SampleTotals returns the sum of counts for every sample.
func (ft *FeatureTable) SampleTotals() []float64 {
	res := make([]float64, len(ft.Samples))
	for _, e := range ft.Entries {
		res[e.Col] += e.Value
	}
	return res
}

// Total returns the sum of all counts.
func (ft *FeatureTable) Total() float64 {
	var res float64
	for _, e := range ft.Entries {
		res += e.Value
	}
	return res
}

// IsInteger reports whether all counts are whole numbers.
func (ft *FeatureTable) IsInteger() bool {
	for _, e := range ft.Entries {
		if e.Value != float64(int64(e.Value)) {
			return false
		}
	}
	return true
}
