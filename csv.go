package mandel

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteCSV writes one line per grid row, cells separated by commas.
// There is no header, no quoting and no trailing delimiter.
func WriteCSV(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)

	record := make([]string, g.width)
	for j := 0; j < g.height; j++ {
		for i, v := range g.row(j) {
			record[i] = strconv.Itoa(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", j, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return bw.Flush()
}

// SaveCSV writes g to path, replacing any existing file.
func SaveCSV(path string, g *Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}()

	if err := WriteCSV(f, g); err != nil {
		return fmt.Errorf("%q: %w", path, err)
	}
	return nil
}

// ReadCSV parses exactly the layout written by WriteCSV: "\n"-terminated rows of
// comma-separated unsigned decimal integers. Carriage returns, blank lines, signs and
// spaces are rejected with ErrMalformedCSV.
// maxIter is not part of the file, so the caller has to supply it.
func ReadCSV(r io.Reader, maxIter int) (*Grid, error) {
	br := bufio.NewReader(r)

	var rows [][]int
	for {
		line, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) {
			if line != "" {
				return nil, fmt.Errorf("%w: row %d is not newline terminated", ErrMalformedCSV, len(rows))
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows), err)
		}

		row, err := parseRow(strings.TrimSuffix(line, "\n"))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedCSV, len(rows), err)
		}
		rows = append(rows, row)
	}

	return GridFromRows(rows, maxIter)
}

func parseRow(line string) ([]int, error) {
	fields := strings.Split(line, ",")
	row := make([]int, len(fields))
	for i, field := range fields {
		if field == "" || strings.TrimLeft(field, "0123456789") != "" {
			return nil, fmt.Errorf("column %d: %q is not a decimal count", i, field)
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		row[i] = v
	}
	return row, nil
}
