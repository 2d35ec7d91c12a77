package iobt2

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/pkg/errcode"
)

// IndexFormatError is returned when a directory is not a valid
// bowtie2 index.
func IndexFormatError(dir string, err error) error {
	msg := `Directory is not a valid bowtie2 index

<em>Directory:</em> %s
<em>Problem:</em> %s

A bowtie2 index directory must contain exactly six files sharing one
prefix: <name>.1.bt2, <name>.2.bt2, <name>.3.bt2, <name>.4.bt2,
<name>.rev.1.bt2, <name>.rev.2.bt2`
	vars := []any{dir, err.Error()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IndexFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid index %s: %w", fn.Name(), dir, err),
	}
}

// BuildDirError is returned when the output directory of a new index
// cannot be created.
func BuildDirError(dir string, err error) error {
	msg := "Cannot create index directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create directory: %w", fn.Name(), err),
	}
}
