package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hoptsp/matrix"
)

// readDistanceCSV parses a CSV file of numeric rows into a Dense matrix.
// Squareness and the numeric policy are checked later by the solver; here we
// only require that the file parses into rectangular float64 rows.
func readDistanceCSV(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open matrix file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, field := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil {
				return nil, fmt.Errorf("bad value at row %d col %d: %w", i+1, j+1, perr)
			}
			rows[i][j] = v
		}
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("bad matrix in %s: %w", path, err)
	}

	return m, nil
}
