// Package iobt2 loads and builds bowtie2 index directories.
// This is an impure package that reads the file system and runs
// bowtie2-build.
package iobt2

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gnames/gnshogun/internal/iorunner"
	"github.com/gnames/gnshogun/pkg/bt2"
	"github.com/gnames/gnsys"
)

// Load reads the listing of dir and validates it as a bowtie2 index.
// Only file names are checked. Sub-directories are not allowed.
func Load(dir string) (*bt2.Index, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, IndexFormatError(dir, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, IndexFormatError(dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			if e.IsDir() {
				return nil, IndexFormatError(dir, bt2.ErrUnrecognizedFile)
			}
			// follow symlinks to regular files
			info, err := os.Stat(filepath.Join(abs, e.Name()))
			if err != nil || !info.Mode().IsRegular() {
				return nil, IndexFormatError(dir, bt2.ErrUnrecognizedFile)
			}
		}
		names = append(names, e.Name())
	}

	idx, err := bt2.Parse(abs, names)
	if err != nil {
		return nil, IndexFormatError(dir, err)
	}

	slog.Debug("Loaded bowtie2 index", "prefix", idx.Prefix())
	return idx, nil
}

// Build creates a bowtie2 index called name in outDir from a FASTA
// file by running bowtie2-build, then loads the result.
func Build(
	ctx context.Context,
	runner iorunner.Runner,
	program string,
	refseqs string,
	outDir string,
	name string,
	threads int,
) (*bt2.Index, error) {
	if err := gnsys.MakeDir(outDir); err != nil {
		return nil, BuildDirError(outDir, err)
	}

	args := BuildArgs(refseqs, filepath.Join(outDir, name), threads)
	if err := runner.Run(ctx, program, args...); err != nil {
		return nil, err
	}

	return Load(outDir)
}

// BuildArgs returns bowtie2-build arguments.
func BuildArgs(refseqs, prefix string, threads int) []string {
	return []string{
		"--threads", strconv.Itoa(threads),
		refseqs,
		prefix,
	}
}
