// mandelbench computes the Mandelbrot set over the default 800x600 grid,
// prints the iteration sum and the compute time, and optionally saves the grid as CSV.
//
// Usage: mandelbench [--save-csv]
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"time"

	mandel "github.com/marben/mandelbench"
)

const (
	saveCSVFlag = "--save-csv"
	csvFilename = "mandelbrot_cpp_data.csv"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// run ignores every argument except an exact --save-csv
func run(args []string, stdout io.Writer) error {
	saveCSV := slices.Contains(args, saveCSVFlag)

	start := time.Now()
	grid, err := mandel.Compute(mandel.DefaultParams())
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("mandel.Compute: %w", err)
	}

	fmt.Fprintf(stdout, "Result: %d\n", grid.Sum())
	fmt.Fprintf(stdout, "Time: %f seconds\n", elapsed.Seconds())

	if !saveCSV {
		return nil
	}

	fmt.Fprintf(stdout, "Saving to %s...\n", csvFilename)
	if err := mandel.SaveCSV(csvFilename, grid); err != nil {
		return fmt.Errorf("saving csv: %w", err)
	}
	fmt.Fprintln(stdout, "Data saved successfully!")
	return nil
}
