// Package errcode enumerates error codes used in gn.Error values
// produced by gnshogun.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Parameter errors
	ParamsError

	// Artifact format errors
	IndexFormatError
	ArtifactFormatError

	// Staging errors
	StageError

	// External tool errors
	ToolNotFoundError
	ExternalToolError

	// Result errors
	TableParseError
	TableWriteError

	// Provenance ledger errors
	LedgerError
)
