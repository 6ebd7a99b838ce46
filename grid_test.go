package mandel_test

import (
	"testing"

	mandel "github.com/marben/mandelbench"
	"github.com/stretchr/testify/require"
)

func TestGridFromRows(t *testing.T) {
	g, err := mandel.GridFromRows([][]int{{1, 2, 3}, {4, 5, 6}}, 10)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, 10, g.MaxIter())
	require.Equal(t, 6, g.At(1, 2))
	require.Equal(t, []int{4, 5, 6}, g.Row(1))
	require.Equal(t, int64(21), g.Sum())
}

func TestGridFromRowsErrors(t *testing.T) {
	_, err := mandel.GridFromRows(nil, 10)
	require.ErrorIs(t, err, mandel.ErrEmptyGrid)

	_, err = mandel.GridFromRows([][]int{{}}, 10)
	require.ErrorIs(t, err, mandel.ErrEmptyGrid)

	_, err = mandel.GridFromRows([][]int{{1, 2}, {3}}, 10)
	require.ErrorIs(t, err, mandel.ErrRaggedGrid)

	_, err = mandel.GridFromRows([][]int{{1, 11}}, 10)
	require.ErrorIs(t, err, mandel.ErrCellOutOfRange)

	_, err = mandel.GridFromRows([][]int{{-1}}, 10)
	require.ErrorIs(t, err, mandel.ErrCellOutOfRange)

	_, err = mandel.GridFromRows([][]int{{1}}, -1)
	require.ErrorIs(t, err, mandel.ErrNegativeMaxIter)
}

func TestGridRowIsCopy(t *testing.T) {
	g, err := mandel.GridFromRows([][]int{{1, 2}, {3, 4}}, 10)
	require.NoError(t, err)

	row := g.Row(0)
	row[0] = 9
	require.Equal(t, 1, g.At(0, 0))
}

func TestGridFromRowsCopiesInput(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	g, err := mandel.GridFromRows(rows, 10)
	require.NoError(t, err)

	rows[1][1] = 0
	require.Equal(t, 4, g.At(1, 1))
}

func TestGridAtOutOfRangePanics(t *testing.T) {
	g, err := mandel.GridFromRows([][]int{{1, 2}}, 10)
	require.NoError(t, err)
	require.Panics(t, func() { g.At(0, 2) })
	require.Panics(t, func() { g.At(1, 0) })
	require.Panics(t, func() { g.At(-1, 0) })
}

func TestGridEqual(t *testing.T) {
	a, _ := mandel.GridFromRows([][]int{{1, 2}, {3, 4}}, 10)
	b, _ := mandel.GridFromRows([][]int{{1, 2}, {3, 4}}, 10)
	c, _ := mandel.GridFromRows([][]int{{1, 2}, {3, 5}}, 10)
	d, _ := mandel.GridFromRows([][]int{{1, 2, 3, 4}}, 10)
	e, _ := mandel.GridFromRows([][]int{{1, 2}, {3, 4}}, 20)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(d))
	require.False(t, a.Equal(e))
	require.False(t, a.Equal(nil))
}
