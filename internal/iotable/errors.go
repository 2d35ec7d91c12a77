package iotable

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/pkg/errcode"
)

// TableParseError is returned when a result table produced by SHOGUN
// cannot be converted. Line is 0 when the problem is not tied to a line.
func TableParseError(path string, line int, err error) error {
	msg := `Cannot import result table

<em>File:</em> %s
<em>Line:</em> %d
<em>Reason:</em> %s

<em>Possible causes:</em>
  - SHOGUN did not finish and the table is incomplete
  - The table was produced by an incompatible SHOGUN version`
	vars := []any{path, line, err.Error()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s line %d: %w", fn.Name(), path, line, err),
	}
}

// TableWriteError is returned when a feature table cannot be saved.
func TableWriteError(path string, err error) error {
	msg := "Cannot write feature table to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
