package mandel

import (
	"bytes"
	"fmt"

	"github.com/marben/irpc/irpcgen"
)

// MarshalBinary implements encoding.BinaryMarshaler, which is how irpc moves a Grid over the wire.
func (g Grid) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := irpcgen.NewEncoder(&buf)

	for _, v := range []int{g.width, g.height, g.maxIter} {
		if err := irpcgen.EncInt(enc, v); err != nil {
			return nil, fmt.Errorf("encode grid header: %w", err)
		}
	}
	if err := irpcgen.EncSlice(enc, g.cells, "int", irpcgen.EncInt[int]); err != nil {
		return nil, fmt.Errorf("encode grid cells: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The decoded grid is checked the same way GridFromRows checks its input.
func (g *Grid) UnmarshalBinary(data []byte) error {
	dec := irpcgen.NewDecoder(bytes.NewReader(data))

	var w, h, maxIter int
	for _, v := range []*int{&w, &h, &maxIter} {
		if err := irpcgen.DecInt(dec, v); err != nil {
			return fmt.Errorf("decode grid header: %w", err)
		}
	}
	var cells []int
	if err := irpcgen.DecSlice(dec, &cells, "int", irpcgen.DecInt[int]); err != nil {
		return fmt.Errorf("decode grid cells: %w", err)
	}

	if w <= 0 || h <= 0 {
		return ErrEmptyGrid
	}
	if maxIter < 0 {
		return ErrNegativeMaxIter
	}
	if len(cells)%w != 0 || len(cells)/w != h {
		return fmt.Errorf("%d cells for a %dx%d grid: %w", len(cells), w, h, ErrRaggedGrid)
	}
	for k, v := range cells {
		if v < 0 || v > maxIter {
			return fmt.Errorf("cell (%d,%d) = %d: %w", k/w, k%w, v, ErrCellOutOfRange)
		}
	}

	*g = Grid{width: w, height: h, maxIter: maxIter, cells: cells}
	return nil
}
