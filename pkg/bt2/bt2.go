// Package bt2 describes the on-disk layout of a prebuilt bowtie2 index.
//
// A bowtie2 index directory consists of six binary files that share one
// prefix, the logical name of the index:
//
//	<name>.1.bt2  <name>.2.bt2  <name>.3.bt2
//	<name>.4.bt2  <name>.rev.1.bt2  <name>.rev.2.bt2
//
// Only names are checked. There is no reliable way to verify the binary
// content of the files short of running bowtie2 itself.
//
// The package is pure, reading directory listings is done in iobt2.
package bt2

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Member is one of the six files of a bowtie2 index.
type Member int

const (
	Idx1 Member = iota
	Idx2
	Ref3
	Ref4
	Rev1
	Rev2
)

// Members lists all index members in the order bowtie2-build writes them.
var Members = []Member{Idx1, Idx2, Ref3, Ref4, Rev1, Rev2}

var suffixes = map[Member]string{
	Idx1: ".1.bt2",
	Idx2: ".2.bt2",
	Ref3: ".3.bt2",
	Ref4: ".4.bt2",
	Rev1: ".rev.1.bt2",
	Rev2: ".rev.2.bt2",
}

// Suffix returns the file name suffix of the member.
func (m Member) Suffix() string {
	return suffixes[m]
}

func (m Member) String() string {
	return "*" + m.Suffix()
}

var (
	// ErrMissingMember means no file matches a required member pattern.
	ErrMissingMember = errors.New("missing index member")
	// ErrDuplicateMember means several files match one member pattern.
	ErrDuplicateMember = errors.New("duplicate index member")
	// ErrPrefixMismatch means member files do not share one prefix.
	ErrPrefixMismatch = errors.New("index members have different prefixes")
	// ErrUnrecognizedFile means a file is not a bowtie2 index member.
	ErrUnrecognizedFile = errors.New("unrecognized file in index directory")
)

// Index is a validated bowtie2 index directory.
type Index struct {
	// Dir is the directory that holds the index files.
	Dir string
	// Files maps each member to its file name (not a path).
	Files map[Member]string

	name string
}

// Name returns the prefix shared by all index files. It is the value
// bowtie2 expects for its -x option, relative to Dir.
func (idx *Index) Name() string {
	return idx.name
}

// Paths returns full paths of the index files in member order.
func (idx *Index) Paths() []string {
	res := make([]string, 0, len(Members))
	for _, m := range Members {
		res = append(res, filepath.Join(idx.Dir, idx.Files[m]))
	}
	return res
}

// Prefix returns the full path prefix of the index (Dir joined with Name).
func (idx *Index) Prefix() string {
	return filepath.Join(idx.Dir, idx.name)
}

// Match returns the member a file name belongs to together with the
// index prefix. The second return value is false for names that are
// not index members.
func Match(fileName string) (Member, string, bool) {
	// reverse members first, because '.rev.1.bt2' also ends with '.1.bt2'
	for _, m := range []Member{Rev1, Rev2, Ref3, Ref4, Idx1, Idx2} {
		prefix, ok := strings.CutSuffix(fileName, m.Suffix())
		if !ok || prefix == "" {
			continue
		}
		return m, prefix, true
	}
	return 0, "", false
}

// Parse validates file names of a directory and creates an Index.
// Each member pattern must match exactly one file, all members must
// share one prefix, and no other files are allowed. Hidden files are
// ignored.
func Parse(dir string, names []string) (*Index, error) {
	found := make(map[Member][]string)
	prefixes := make(map[Member]string)
	var unknown []string

	for _, name := range names {
		if strings.HasPrefix(name, ".") {
			continue
		}
		m, prefix, ok := Match(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		found[m] = append(found[m], name)
		prefixes[m] = prefix
	}

	for _, m := range Members {
		switch n := len(found[m]); {
		case n == 0:
			return nil, fmt.Errorf("%w: no file matches %s", ErrMissingMember, m)
		case n > 1:
			slices.Sort(found[m])
			return nil, fmt.Errorf("%w: %s matches %s",
				ErrDuplicateMember, m, strings.Join(found[m], ", "))
		}
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("%w: %s",
			ErrUnrecognizedFile, strings.Join(unknown, ", "))
	}

	name := prefixes[Idx1]
	for _, m := range Members {
		if prefixes[m] != name {
			return nil, fmt.Errorf("%w: %q and %q",
				ErrPrefixMismatch, name, prefixes[m])
		}
	}

	res := &Index{
		Dir:   dir,
		Files: make(map[Member]string, len(Members)),
		name:  name,
	}
	for _, m := range Members {
		res.Files[m] = found[m][0]
	}
	return res, nil
}

// FileNames returns the six file names of an index with the given name.
func FileNames(name string) []string {
	res := make([]string, 0, len(Members))
	for _, m := range Members {
		res = append(res, name+m.Suffix())
	}
	return res
}
