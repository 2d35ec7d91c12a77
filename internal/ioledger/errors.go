package ioledger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/pkg/errcode"
)

// LedgerError is returned when the run history cannot be read or
// written.
func LedgerError(action, target string, err error) error {
	msg := `Cannot %s <em>%s</em> in the run ledger

Set <em>ledger: false</em> in config.yaml to disable run history.`
	vars := []any{action, target}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LedgerError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot %s %s: %w", fn.Name(), action, target, err),
	}
}
