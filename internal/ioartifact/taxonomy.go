package ioartifact

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnshogun/pkg/artifact"
)

// LoadTaxonomy loads a tab-separated reference taxonomy. The first
// column is a sequence ID, the second is its lineage, other columns
// (for example confidence) are ignored. A header line that starts
// with "Feature ID" or "#" is skipped.
func LoadTaxonomy(path string) (*artifact.Taxonomy, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, ArtifactFormatError(path, "taxonomy", err)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, ArtifactFormatError(path, "taxonomy", err)
	}
	defer f.Close()

	recs, err := readTaxonomy(f)
	if err != nil {
		return nil, ArtifactFormatError(path, "taxonomy", err)
	}

	slog.Info("Loaded taxonomy", "path", abs, "records", len(recs))
	return &artifact.Taxonomy{Path: abs, Records: recs}, nil
}

func readTaxonomy(r io.Reader) ([]artifact.TaxonRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var res []artifact.TaxonRecord
	ids := make(map[string]struct{})
	first := true
	var line int
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		row := strings.Split(text, "\t")

		id := strings.TrimSpace(row[0])
		if first {
			first = false
			if id == "Feature ID" || strings.HasPrefix(id, "#") {
				continue
			}
		}

		if len(row) < 2 {
			return nil, fmt.Errorf("line %d: expected ID and lineage columns", line)
		}
		if id == "" {
			return nil, fmt.Errorf("line %d: empty sequence ID", line)
		}
		if _, ok := ids[id]; ok {
			return nil, fmt.Errorf("line %d: duplicate sequence ID %q", line, id)
		}
		ids[id] = struct{}{}

		res = append(res, artifact.TaxonRecord{
			ID:      id,
			Lineage: strings.TrimSpace(row[1]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(res) == 0 {
		return nil, fmt.Errorf("no taxonomy records found")
	}
	return res, nil
}
