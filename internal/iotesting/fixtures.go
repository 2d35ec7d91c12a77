// Package iotesting provides shared fixtures for tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnshogun/pkg/bt2"
	"github.com/gnames/gnshogun/pkg/config"
)

// Query is a small set of reads from two samples.
var Query = []Record{
	{"S1_1", "ACGTACGTACGTAAGT"},
	{"S1_2", "TTGACCATGGACGTAA"},
	{"S2_1", "GGCATTACGNNACGTA"},
}

// RefSeqs are reference genomes fragments.
var RefSeqs = []Record{
	{"ref1", "ACGTACGTACGTAAGTTTGACCATGGACGTAA"},
	{"ref2", "GGCATTACGTTACGTAGGCATTACGTTACGTA"},
}

// Taxonomy lines for RefSeqs.
var Taxonomy = []string{
	"ref1\tk__Bacteria; p__Proteobacteria; c__Gammaproteobacteria",
	"ref2\tk__Bacteria; p__Firmicutes; c__Bacilli",
}

// Record is a FASTA record.
type Record struct {
	Name string
	Seq  string
}

// WriteFasta writes records to path in FASTA format.
func WriteFasta(t testing.TB, path string, recs []Record) string {
	t.Helper()
	var sb strings.Builder
	for _, r := range recs {
		fmt.Fprintf(&sb, ">%s\n%s\n", r.Name, r.Seq)
	}
	WriteFile(t, path, sb.String())
	return path
}

// WriteTaxonomy writes a taxonomy file with the QIIME-style header.
func WriteTaxonomy(t testing.TB, path string, lines []string) string {
	t.Helper()
	content := "Feature ID\tTaxon\n" + strings.Join(lines, "\n") + "\n"
	WriteFile(t, path, content)
	return path
}

// WriteIndex creates a directory with six index files named after
// name. Each file holds a short distinct payload.
func WriteIndex(t testing.TB, dir, name string) string {
	t.Helper()
	WriteIndexFiles(t, dir, bt2.FileNames(name))
	return dir
}

// WriteIndexFiles creates dir with arbitrary index file names.
func WriteIndexFiles(t testing.TB, dir string, names []string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("cannot create %s: %v", dir, err)
	}
	for i, v := range names {
		payload := fmt.Sprintf("bt2-payload-%d-%s", i, v)
		WriteFile(t, filepath.Join(dir, v), payload)
	}
	return dir
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("cannot create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
}

// Inputs writes the default query, reference sequences, taxonomy and
// index into dir and returns their paths.
func Inputs(t testing.TB, dir string) (query, refseqs, taxonomy, index string) {
	t.Helper()
	query = WriteFasta(t, filepath.Join(dir, "query.fna"), Query)
	refseqs = WriteFasta(t, filepath.Join(dir, "refseqs.fasta"), RefSeqs)
	taxonomy = WriteTaxonomy(t, filepath.Join(dir, "taxonomy.tsv"), Taxonomy)
	index = WriteIndex(t, filepath.Join(dir, "index"), "refdb")
	return query, refseqs, taxonomy, index
}

// Config returns a configuration that keeps every file of a test
// inside the test temporary directory.
func Config(t testing.TB) *config.Config {
	t.Helper()
	home := t.TempDir()
	tmp := filepath.Join(home, "tmp")
	if err := os.MkdirAll(tmp, 0755); err != nil {
		t.Fatalf("cannot create %s: %v", tmp, err)
	}
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptTmpDir(tmp),
		config.OptJobsNumber(2),
	})
	return cfg
}

// Entries returns sorted names of entries of dir.
func Entries(t testing.TB, dir string) []string {
	t.Helper()
	es, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("cannot read %s: %v", dir, err)
	}
	res := make([]string, 0, len(es))
	for _, e := range es {
		res = append(res, e.Name())
	}
	return res
}
