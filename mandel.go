package mandel

import "math"

// Region within the complex plane that is sampled by the pixel grid
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// DefaultRegion covers the whole set
var DefaultRegion = Region{
	Xmin: -2.0,
	Xmax: 1.0,
	Ymin: -1.0,
	Ymax: 1.0,
}

func (r Region) validate() error {
	for _, v := range []float64{r.Xmin, r.Xmax, r.Ymin, r.Ymax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteRegion
		}
	}
	if r.Xmax <= r.Xmin || r.Ymax <= r.Ymin {
		return ErrEmptyRegion
	}
	return nil
}

// Params of a single grid computation
type Params struct {
	Width, Height int
	MaxIter       int
	Region        Region
}

// DefaultParams returns the benchmark defaults: 800x600 pixels, 100 iterations over DefaultRegion.
func DefaultParams() Params {
	return Params{
		Width:   800,
		Height:  600,
		MaxIter: 100,
		Region:  DefaultRegion,
	}
}

// Validate reports parameters the coordinate mapping can't handle.
// Both dimensions need at least two pixels, since the mapping divides by Width-1 and Height-1.
func (p Params) Validate() error {
	if p.Width < 2 || p.Height < 2 {
		return ErrBadDimensions
	}
	if p.MaxIter < 0 {
		return ErrNegativeMaxIter
	}
	return p.Region.validate()
}

// Real maps column i onto the real axis. Column 0 is Xmin, column Width-1 is Xmax.
func (p Params) Real(i int) float64 {
	return p.Region.Xmin + (p.Region.Xmax-p.Region.Xmin)*float64(i)/float64(p.Width-1)
}

// Imag maps row j onto the imaginary axis. Row 0 is Ymin, row Height-1 is Ymax.
func (p Params) Imag(j int) float64 {
	return p.Region.Ymin + (p.Region.Ymax-p.Region.Ymin)*float64(j)/float64(p.Height-1)
}

// Escape iterates z = z*z + c from z = 0 and returns the number of iterations
// performed before |z| exceeded 2, capped at maxIter.
func Escape(cr, ci float64, maxIter int) int {
	var zr, zi float64
	k := 0
	for zr*zr+zi*zi <= 4.0 && k < maxIter {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		k++
	}
	return k
}

// Compute evaluates Escape for every pixel of the grid described by p.
func Compute(p Params) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := newGrid(p.Width, p.Height, p.MaxIter)
	for j := 0; j < p.Height; j++ {
		ci := p.Imag(j)
		row := g.cells[j*p.Width : (j+1)*p.Width]
		for i := range row {
			row[i] = Escape(p.Real(i), ci, p.MaxIter)
		}
	}
	return g, nil
}
