package table_test

import (
	"testing"

	"github.com/gnames/gnshogun/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *table.FeatureTable {
	ft := table.New("t1", []string{"f1", "f2", "f3"}, []string{"s1", "s2"})
	_ = ft.Add(0, 0, 5)
	_ = ft.Add(0, 1, 0)
	_ = ft.Add(1, 1, 2)
	_ = ft.Add(2, 0, 1)
	_ = ft.Add(2, 1, 3)
	return ft
}

func TestFeatureTable(t *testing.T) {
	ft := sample()

	r, c := ft.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Len(t, ft.Entries, 4, "zero values are not stored")

	assert.Equal(t, 5.0, ft.Get("f1", "s1"))
	assert.Equal(t, 0.0, ft.Get("f1", "s2"))
	assert.Equal(t, 3.0, ft.Get("f3", "s2"))
	assert.Equal(t, 0.0, ft.Get("f9", "s1"))

	assert.Equal(t, []float64{6, 5}, ft.SampleTotals())
	assert.Equal(t, 11.0, ft.Total())
	assert.True(t, ft.IsInteger())

	assert.Equal(t, [][]float64{{5, 0}, {0, 2}, {1, 3}}, ft.Dense())
}

func TestAdd_OutOfRange(t *testing.T) {
	ft := sample()
	require.Error(t, ft.Add(3, 0, 1))
	require.Error(t, ft.Add(0, 2, 1))
	require.Error(t, ft.Add(-1, 0, 1))
}

func TestIsInteger(t *testing.T) {
	ft := table.New("t", []string{"f"}, []string{"s"})
	require.NoError(t, ft.Add(0, 0, 1.5))
	assert.False(t, ft.IsInteger())
}
