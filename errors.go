package mandel

import "errors"

// Every message carries the "mandel:" prefix. Wrap with fmt.Errorf("ctx: %w", ErrX)
// when context is needed, callers match with errors.Is.
var (
	// ErrBadDimensions is returned for grids narrower or shorter than 2 pixels.
	ErrBadDimensions = errors.New("mandel: grid width and height must be >= 2")

	// ErrNegativeMaxIter is returned for an iteration cap below zero.
	ErrNegativeMaxIter = errors.New("mandel: max iterations must be >= 0")

	// ErrNonFiniteRegion signals a NaN or ±Inf region bound.
	ErrNonFiniteRegion = errors.New("mandel: region bounds must be finite")

	// ErrEmptyRegion signals Xmax <= Xmin or Ymax <= Ymin.
	ErrEmptyRegion = errors.New("mandel: region is empty or inverted")

	ErrEmptyGrid      = errors.New("mandel: grid has no cells")
	ErrRaggedGrid     = errors.New("mandel: grid rows differ in length")
	ErrCellOutOfRange = errors.New("mandel: cell value outside [0, max iterations]")

	// ErrMalformedCSV is returned when a CSV cell isn't a decimal integer.
	ErrMalformedCSV = errors.New("mandel: malformed csv")
)
