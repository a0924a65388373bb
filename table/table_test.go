package table_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openresil/cgekit/labels"
	"github.com/openresil/cgekit/table"
)

var (
	sectors  = labels.MustNew("GOODS", "HS", "TRADE")
	accounts = labels.MustNew("USSOC", "PROPTX")
)

// TestNewSeries_Shape verifies length validation and label access.
func TestNewSeries_Shape(t *testing.T) {
	_, err := table.NewSeries(sectors, []float64{1, 2})
	assert.ErrorIs(t, err, table.ErrShape)

	s, err := table.NewSeries(sectors, []float64{1, 2, 3})
	require.NoError(t, err)

	v, err := s.At("HS")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = s.At("NOPE")
	assert.ErrorIs(t, err, table.ErrUnknownLabel)
}

// TestSeries_SetAndSum verifies mutation by label and deterministic sum.
func TestSeries_SetAndSum(t *testing.T) {
	s := table.FilledSeries(sectors, 1.0)
	require.NoError(t, s.Set("TRADE", 4.0))
	assert.Equal(t, 6.0, s.Sum())
	assert.ErrorIs(t, s.Set("NOPE", 0), table.ErrUnknownLabel)
}

// TestSeries_Slice verifies label-based reorder, not just filter.
func TestSeries_Slice(t *testing.T) {
	s, _ := table.NewSeries(sectors, []float64{1, 2, 3})
	sub, err := s.Slice(labels.MustNew("TRADE", "GOODS"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, sub.Cell(0))
	assert.Equal(t, 1.0, sub.Cell(1))

	_, err = s.Slice(labels.MustNew("NOPE"))
	assert.ErrorIs(t, err, table.ErrUnknownLabel)
}

// TestNewFrame_RowMajor verifies the flat row-major layout contract.
func TestNewFrame_RowMajor(t *testing.T) {
	f, err := table.NewFrame(accounts, sectors, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	require.NoError(t, err)

	v, err := f.At("PROPTX", "HS")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, 3.0, f.Cell(0, 2))

	_, err = table.NewFrame(accounts, sectors, []float64{1})
	assert.ErrorIs(t, err, table.ErrShape)
}

// TestFrame_RowColExtraction verifies Series extraction keeps labels.
func TestFrame_RowColExtraction(t *testing.T) {
	f, _ := table.NewFrame(accounts, sectors, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	row, err := f.Row("USSOC")
	require.NoError(t, err)
	assert.True(t, row.Rows().Equal(sectors))
	assert.Equal(t, 6.0, row.Sum())

	col, err := f.Col("GOODS")
	require.NoError(t, err)
	assert.True(t, col.Rows().Equal(accounts))
	assert.Equal(t, 5.0, col.Sum())
}

// TestFrame_Sums verifies Sum0 (per-column) and Sum1 (per-row).
func TestFrame_Sums(t *testing.T) {
	f, _ := table.NewFrame(accounts, sectors, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	s0 := f.Sum0()
	assert.True(t, s0.Rows().Equal(sectors))
	v, _ := s0.At("HS")
	assert.Equal(t, 7.0, v)

	s1 := f.Sum1()
	assert.True(t, s1.Rows().Equal(accounts))
	v, _ = s1.At("PROPTX")
	assert.Equal(t, 15.0, v)
}

// TestFrame_Slice verifies two-axis label reorder.
func TestFrame_Slice(t *testing.T) {
	f, _ := table.NewFrame(accounts, sectors, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	sub, err := f.Slice(labels.MustNew("PROPTX"), labels.MustNew("TRADE", "GOODS"))
	require.NoError(t, err)
	assert.Equal(t, 6.0, sub.Cell(0, 0))
	assert.Equal(t, 4.0, sub.Cell(0, 1))
}

// TestNaN_Survives verifies NaN is a legal cell value that round-trips:
// upstream data bugs must stay visible until serialization time.
func TestNaN_Survives(t *testing.T) {
	s := table.FilledSeries(accounts, math.NaN())
	v, err := s.At("USSOC")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	c := s.Clone()
	assert.True(t, math.IsNaN(c.Cell(1)))
}

// TestClone_Independent verifies deep-copy semantics.
func TestClone_Independent(t *testing.T) {
	f := table.FilledFrame(accounts, sectors, 1.0)
	c := f.Clone()
	require.NoError(t, c.Set("USSOC", "GOODS", 99))

	v, _ := f.At("USSOC", "GOODS")
	assert.Equal(t, 1.0, v, "clone mutation must not leak into the source")
}

// TestValue_Union verifies the three Value cases are distinguishable.
func TestValue_Union(t *testing.T) {
	vals := []table.Value{
		table.Scalar(3.5),
		table.FilledSeries(accounts, 1),
		table.FilledFrame(accounts, sectors, 1),
	}
	var scalars, series, frames int
	for _, v := range vals {
		switch v.(type) {
		case table.Scalar:
			scalars++
		case *table.Series:
			series++
		case *table.Frame:
			frames++
		}
	}
	assert.Equal(t, []int{1, 1, 1}, []int{scalars, series, frames})
}
