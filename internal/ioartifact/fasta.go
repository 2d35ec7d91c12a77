package ioartifact

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnshogun/pkg/artifact"
)

// LoadQuery loads and validates query reads. Sample IDs are collected
// from read names.
func LoadQuery(path string) (*artifact.Sequences, error) {
	return loadSequences(path, true)
}

// LoadRefSeqs loads and validates reference sequences.
func LoadRefSeqs(path string) (*artifact.Sequences, error) {
	return loadSequences(path, false)
}

func loadSequences(path string, withSamples bool) (*artifact.Sequences, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, ArtifactFormatError(path, "DNA FASTA", err)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, ArtifactFormatError(path, "DNA FASTA", err)
	}
	defer f.Close()

	res, err := scanFasta(f, withSamples)
	if err != nil {
		return nil, ArtifactFormatError(path, "DNA FASTA", err)
	}
	res.Path = abs

	slog.Info("Loaded sequences",
		"path", abs,
		"records", res.Count,
		"residues", res.Residues,
		"samples", len(res.SampleIDs),
	)
	return res, nil
}

func scanFasta(r io.Reader, withSamples bool) (*artifact.Sequences, error) {
	res := &artifact.Sequences{}
	seen := make(map[string]struct{})

	template := linear.NewSeq("", nil, alphabet.DNAredundant)
	sc := seqio.NewScanner(fasta.NewReader(r, template))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		res.Count++
		name := s.Name()
		if name == "" {
			return nil, fmt.Errorf("record %s has no name",
				humanize.Ordinal(res.Count))
		}
		if err := validDNA(s.Seq); err != nil {
			return nil, fmt.Errorf("record %q: %w", name, err)
		}
		res.Residues += int64(len(s.Seq))

		if !withSamples {
			continue
		}
		sample := artifact.SampleID(name)
		if _, ok := seen[sample]; !ok {
			seen[sample] = struct{}{}
			res.SampleIDs = append(res.SampleIDs, sample)
		}
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}

	if res.Count == 0 {
		return nil, fmt.Errorf("no sequences found")
	}
	return res, nil
}

func validDNA(letters alphabet.Letters) error {
	if len(letters) == 0 {
		return fmt.Errorf("empty sequence")
	}
	for i, l := range letters {
		if l == '-' || l == '.' || !alphabet.DNAredundant.IsValid(l) {
			return fmt.Errorf("invalid character %q at position %d",
				rune(l), i+1)
		}
	}
	return nil
}
