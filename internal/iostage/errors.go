package iostage

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/pkg/errcode"
)

// StageError is returned when the staging directory cannot be built
// or removed.
func StageError(action, path string, err error) error {
	msg := `Cannot %s

<em>Path:</em> %s

<em>Possible causes:</em>
  - Not enough disk space in the temporary directory
  - Permission denied
  - Input file was removed after it was loaded`
	vars := []any{action, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StageError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot %s %s: %w", fn.Name(), action, path, err),
	}
}
