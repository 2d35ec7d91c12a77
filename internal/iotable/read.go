// Package iotable converts SHOGUN tab-separated results into feature
// tables and saves feature tables to disk.
package iotable

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gnames/gnshogun/pkg/table"
	"github.com/gnames/gnuuid"
)

// ReadTSV reads a feature table from a tab-separated file. The first
// non-comment line is the header: its first field names the ID column,
// the rest are sample IDs. Every following line holds a feature ID and
// one count per sample.
func ReadTSV(path string) (*table.FeatureTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, TableParseError(path, 0, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err = sc.Err(); err != nil {
		return nil, TableParseError(path, 0, err)
	}

	start := headerLine(lines)
	if start < 0 {
		return nil, TableParseError(path, 0, errors.New("file is empty"))
	}

	header := strings.Split(lines[start], "\t")
	samples := header[1:]
	if err = checkUnique(samples, "sample"); err != nil {
		return nil, TableParseError(path, start+1, err)
	}

	var features []string
	var rows [][]float64
	var lineNums []int
	seen := make(map[string]struct{})

	for i := start + 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != len(header) {
			err = fmt.Errorf("expected %d columns, got %d", len(header), len(fields))
			return nil, TableParseError(path, i+1, err)
		}
		if _, ok := seen[fields[0]]; ok {
			err = fmt.Errorf("duplicate feature ID %q", fields[0])
			return nil, TableParseError(path, i+1, err)
		}
		seen[fields[0]] = struct{}{}

		vals := make([]float64, len(samples))
		for j, v := range fields[1:] {
			vals[j], err = parseCount(v)
			if err != nil {
				err = fmt.Errorf("sample %q: %w", samples[j], err)
				return nil, TableParseError(path, i+1, err)
			}
		}
		features = append(features, fields[0])
		rows = append(rows, vals)
		lineNums = append(lineNums, i+1)
	}

	res := table.New(gnuuid.New(filepath.Base(path)).String(), features, samples)
	for i, vals := range rows {
		for j, v := range vals {
			if err = res.Add(i, j, v); err != nil {
				return nil, TableParseError(path, lineNums[i], err)
			}
		}
	}
	return res, nil
}

// headerLine returns the index of the header, skipping leading comment
// lines that precede another comment line. It returns -1 if there is no
// header.
func headerLine(lines []string) int {
	for i, v := range lines {
		if strings.TrimSpace(v) == "" {
			continue
		}
		next := i + 1
		if strings.HasPrefix(v, "#") && next < len(lines) &&
			strings.HasPrefix(lines[next], "#") {
			continue
		}
		return i
	}
	return -1
}

// parseCount converts a cell into a count. Counts are finite and not
// negative.
func parseCount(s string) (float64, error) {
	res, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, fmt.Errorf("count %q is not a finite number", s)
	}
	if res < 0 {
		return 0, fmt.Errorf("count %q is negative", s)
	}
	return res, nil
}

func checkUnique(ids []string, kind string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, v := range ids {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("duplicate %s ID %q", kind, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
