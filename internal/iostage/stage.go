// Package iostage assembles the database directory SHOGUN expects.
//
// SHOGUN reads a reference database from a directory that contains
// reference sequences, their taxonomy, aligner indices and a
// metadata.yaml file describing them. Stage builds such a directory
// from validated artifacts in a fresh temporary location. The
// directory belongs to one run only and is removed by Close.
package iostage

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/pkg/artifact"
	"github.com/gnames/gnshogun/pkg/bt2"
	"github.com/gnames/gnshogun/pkg/config"
)

// Names of entries inside a staging directory.
const (
	RefSeqsFile  = "refseqs.fna"
	TaxonomyFile = "taxa.tsv"
	IndexDir     = "bowtie2"
	MetadataFile = "metadata.yaml"
)

// Dir is a staged SHOGUN database directory.
type Dir struct {
	// Path is the absolute path of the directory.
	Path string

	keep   bool
	closed bool
}

// Stage creates a temporary directory inside cfg.TmpDir and fills it
// with reference sequences, taxonomy, the bowtie2 index and
// metadata.yaml. If any step fails, the directory is removed before
// the error is returned.
func Stage(cfg *config.Config, inp *artifact.Inputs) (*Dir, error) {
	path, err := os.MkdirTemp(cfg.TmpDir, config.AppName+"-")
	if err != nil {
		return nil, StageError("create staging directory", cfg.TmpDir, err)
	}
	dir := &Dir{Path: path, keep: cfg.KeepStaging}
	slog.Info("Staging SHOGUN database", "dir", path)

	if err = dir.fill(cfg, inp); err != nil {
		if rmErr := os.RemoveAll(path); rmErr != nil {
			slog.Error("Cannot remove staging directory",
				"dir", path, "error", rmErr)
		}
		return nil, err
	}

	return dir, nil
}

func (d *Dir) fill(cfg *config.Config, inp *artifact.Inputs) error {
	refs := d.File(RefSeqsFile)
	if err := copyFile(inp.RefSeqs.Path, refs, cfg.WithProgress); err != nil {
		return StageError("copy reference sequences", refs, err)
	}

	tax := d.File(TaxonomyFile)
	if err := writeTaxonomy(tax, inp.Taxonomy); err != nil {
		return StageError("write taxonomy", tax, err)
	}

	idxDir := d.File(IndexDir)
	if err := copyIndex(inp.Index, idxDir, cfg.WithProgress); err != nil {
		return StageError("copy bowtie2 index", idxDir, err)
	}

	meta := d.File(MetadataFile)
	if err := writeMetadata(meta, NewMetadata(inp.Index.Name())); err != nil {
		return StageError("write metadata", meta, err)
	}
	return nil
}

// File returns the path of an entry inside the staging directory.
func (d *Dir) File(name string) string {
	return filepath.Join(d.Path, name)
}

// Close removes the staging directory. It is safe to call Close
// several times. When the configuration asked to keep staging
// directories, Close only reports where the directory is.
func (d *Dir) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true

	if d.keep {
		slog.Info("Keeping staging directory", "dir", d.Path)
		gn.Info("Staging directory kept at <em>%s</em>", d.Path)
		return nil
	}

	if err := os.RemoveAll(d.Path); err != nil {
		slog.Error("Cannot remove staging directory", "dir", d.Path, "error", err)
		return StageError("remove staging directory", d.Path, err)
	}
	slog.Debug("Removed staging directory", "dir", d.Path)
	return nil
}

func writeTaxonomy(path string, tax *artifact.Taxonomy) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, v := range tax.Records {
		w.WriteString(v.ID)
		w.WriteByte('\t')
		w.WriteString(v.Lineage)
		w.WriteByte('\n')
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func copyIndex(idx *bt2.Index, dst string, withProgress bool) error {
	if err := os.Mkdir(dst, 0755); err != nil {
		return err
	}
	for _, src := range idx.Paths() {
		dstFile := filepath.Join(dst, filepath.Base(src))
		if err := copyFile(src, dstFile, withProgress); err != nil {
			return err
		}
	}
	return nil
}
