package geomio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kitewing/vsmgo/internal/vsmerr"
)

// ReadPolarCSV reads a 4-column "alpha,cl,cd,cm" table for a
// PolarVectors sectional model. A header row is detected and skipped
// when its first field does not parse as a float. Angles are expected
// in degrees and are converted to radians.
func ReadPolarCSV(r io.Reader) (alpha, cl, cd, cm []float64, err error) {
	records, err := readCSVRecords(r, 4)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	for _, rec := range records {
		vals, err := parseFloats(rec)
		if err != nil {
			return nil, nil, nil, nil, vsmerr.NewConfigurationError("ReadPolarCSV", err)
		}
		alpha = append(alpha, vals[0]*degToRad)
		cl = append(cl, vals[1])
		cd = append(cd, vals[2])
		cm = append(cm, vals[3])
	}
	if len(alpha) == 0 {
		return nil, nil, nil, nil, vsmerr.NewConfigurationError("ReadPolarCSV", fmt.Errorf("no data rows"))
	}
	return alpha, cl, cd, cm, nil
}

// ReadPolarMatrixCSV reads the 2-D (alpha, delta) grid form for
// PolarMatrices: a header row "alpha\delta,<delta_0>,<delta_1>,..."
// followed by data rows whose first column is a label
// "<alpha>:<cl|cd|cm>" and whose remaining columns hold that quantity
// at each delta. Rows of each quantity are collected in file order, and
// alpha values are recorded in order of first appearance. Angles are in
// degrees and are converted to radians.
func ReadPolarMatrixCSV(r io.Reader) (alpha, delta []float64, cl, cd, cm [][]float64, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, nil, nil, nil, vsmerr.NewConfigurationError("ReadPolarMatrixCSV", err)
	}
	if len(rows) < 2 {
		return nil, nil, nil, nil, nil, vsmerr.NewConfigurationError("ReadPolarMatrixCSV", fmt.Errorf("need a header row and at least one data row"))
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, nil, nil, nil, nil, vsmerr.NewConfigurationError("ReadPolarMatrixCSV", fmt.Errorf("header must list at least one delta column"))
	}
	for _, field := range header[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, nil, nil, nil, nil, vsmerr.NewConfigurationError("ReadPolarMatrixCSV", err)
		}
		delta = append(delta, v*degToRad)
	}

	grids := map[string][][]float64{"cl": nil, "cd": nil, "cm": nil}
	seenAlpha := map[float64]bool{}

	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		marker := strings.ToLower(strings.TrimSpace(row[0]))
		quantity, alphaField, ok := splitMarker(marker, row[0])
		if !ok {
			return nil, nil, nil, nil, nil, vsmerr.NewConfigurationError("ReadPolarMatrixCSV", fmt.Errorf("row label %q must be <alpha>:<cl|cd|cm>", row[0]))
		}
		a, err := strconv.ParseFloat(alphaField, 64)
		if err != nil {
			return nil, nil, nil, nil, nil, vsmerr.NewConfigurationError("ReadPolarMatrixCSV", err)
		}
		aRad := a * degToRad
		if !seenAlpha[aRad] {
			alpha = append(alpha, aRad)
			seenAlpha[aRad] = true
		}
		vals, err := parseFloats(row[1:])
		if err != nil {
			return nil, nil, nil, nil, nil, vsmerr.NewConfigurationError("ReadPolarMatrixCSV", err)
		}
		if len(vals) != len(delta) {
			return nil, nil, nil, nil, nil, vsmerr.NewConfigurationError("ReadPolarMatrixCSV", fmt.Errorf("row %q has %d values, want %d", row[0], len(vals), len(delta)))
		}
		grids[quantity] = append(grids[quantity], vals)
	}

	return alpha, delta, grids["cl"], grids["cd"], grids["cm"], nil
}

func splitMarker(lower, original string) (quantity, alphaField string, ok bool) {
	idx := strings.LastIndex(original, ":")
	if idx < 0 {
		return "", "", false
	}
	q := strings.ToLower(strings.TrimSpace(original[idx+1:]))
	if q != "cl" && q != "cd" && q != "cm" {
		return "", "", false
	}
	return q, strings.TrimSpace(original[:idx]), true
}

const degToRad = 3.14159265358979323846 / 180

func readCSVRecords(r io.Reader, width int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = width
	var out [][]string
	all, err := reader.ReadAll()
	if err != nil {
		return nil, vsmerr.NewConfigurationError("readCSVRecords", err)
	}
	for _, rec := range all {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64); err != nil {
			continue // header row
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseFloats(fields []string) ([]float64, error) {
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
