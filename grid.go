package mandel

import "fmt"

// Grid holds escape iteration counts, Height rows of Width columns, row-major.
// A Grid is never modified after it's built, so it can be shared between goroutines.
type Grid struct {
	width, height int
	maxIter       int
	cells         []int
}

func newGrid(w, h, maxIter int) *Grid {
	return &Grid{
		width:   w,
		height:  h,
		maxIter: maxIter,
		cells:   make([]int, w*h),
	}
}

// GridFromRows builds a Grid from rows of iteration counts, e.g. parsed back from CSV.
// All rows must have the same length and every value must lie in [0, maxIter].
func GridFromRows(rows [][]int, maxIter int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if maxIter < 0 {
		return nil, ErrNegativeMaxIter
	}

	w := len(rows[0])
	g := newGrid(w, len(rows), maxIter)
	for j, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", j, len(row), w, ErrRaggedGrid)
		}
		for i, v := range row {
			if v < 0 || v > maxIter {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", j, i, v, ErrCellOutOfRange)
			}
		}
		copy(g.cells[j*w:], row)
	}
	return g, nil
}

func (g *Grid) Width() int   { return g.width }
func (g *Grid) Height() int  { return g.height }
func (g *Grid) MaxIter() int { return g.maxIter }

// At returns the iteration count of row j, column i. It panics on out of range indices, like a slice does.
func (g *Grid) At(j, i int) int {
	if i < 0 || i >= g.width || j < 0 || j >= g.height {
		panic(fmt.Sprintf("mandel: grid index (%d,%d) out of range %dx%d", j, i, g.height, g.width))
	}
	return g.cells[j*g.width+i]
}

// Row returns a copy of row j.
func (g *Grid) Row(j int) []int {
	row := make([]int, g.width)
	copy(row, g.row(j))
	return row
}

func (g *Grid) row(j int) []int {
	return g.cells[j*g.width : (j+1)*g.width]
}

// Sum adds up all cells. 64 bits keep large grids with high iteration caps from overflowing.
func (g *Grid) Sum() int64 {
	var sum int64
	for _, v := range g.cells {
		sum += int64(v)
	}
	return sum
}

// Equal reports whether both grids have the same shape and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height || g.maxIter != o.maxIter {
		return false
	}
	for k, v := range g.cells {
		if o.cells[k] != v {
			return false
		}
	}
	return true
}
