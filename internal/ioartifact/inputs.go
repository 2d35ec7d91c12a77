// Package ioartifact loads and validates SHOGUN inputs from files.
// Every format problem is reported here, before anything is staged or
// any external program runs.
package ioartifact

import (
	"github.com/gnames/gnshogun/internal/iobt2"
	"github.com/gnames/gnshogun/pkg/artifact"
)

// Paths are locations of SHOGUN inputs.
type Paths struct {
	Query    string
	RefSeqs  string
	Taxonomy string
	IndexDir string
}

// LoadInputs loads all inputs of a run. The index is checked first,
// because it is the cheapest to validate.
func LoadInputs(p Paths) (*artifact.Inputs, error) {
	idx, err := iobt2.Load(p.IndexDir)
	if err != nil {
		return nil, err
	}

	tax, err := LoadTaxonomy(p.Taxonomy)
	if err != nil {
		return nil, err
	}

	refs, err := LoadRefSeqs(p.RefSeqs)
	if err != nil {
		return nil, err
	}

	query, err := LoadQuery(p.Query)
	if err != nil {
		return nil, err
	}

	res := artifact.Inputs{
		Query:    query,
		RefSeqs:  refs,
		Taxonomy: tax,
		Index:    idx,
	}
	return &res, nil
}
