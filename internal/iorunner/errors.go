package iorunner

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/pkg/errcode"
)

// ExternalToolError is returned when a tool exits with non-zero status.
// The tool's own diagnostics are already printed to stderr.
func ExternalToolError(line string, exitCode int, err error) error {
	msg := `External command failed with exit status %d

<em>Command:</em> %s

See the output of the command above for details.`
	vars := []any{exitCode, line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExternalToolError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: command exited with status %d: %w",
			fn.Name(), exitCode, err),
	}
}

// ToolNotFoundError is returned when a tool cannot be started.
func ToolNotFoundError(name string, err error) error {
	msg := `Cannot start <em>%s</em>

<em>How to fix:</em>
  1. Install the program and make sure it is in PATH
  2. Or set its full path in config.yaml`
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ToolNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot start %s: %w", fn.Name(), name, err),
	}
}
