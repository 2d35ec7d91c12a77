package ioartifact

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/pkg/errcode"
)

// ArtifactFormatError is returned when an input file does not conform
// to its expected format.
func ArtifactFormatError(path, kind string, err error) error {
	msg := `Cannot load %s file

<em>File:</em> %s
<em>Problem:</em> %s`
	vars := []any{kind, path, err.Error()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArtifactFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid %s file %s: %w",
			fn.Name(), kind, path, err),
	}
}
