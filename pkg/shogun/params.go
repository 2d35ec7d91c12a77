package shogun

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/pkg/errcode"
)

// Params are user-tunable SHOGUN parameters.
type Params struct {
	// TaxaCut is the fraction of hits that must agree on a taxon for
	// a read to be assigned to it, (0, 1].
	TaxaCut float64

	// Threads is the number of threads used by the aligner.
	Threads int

	// PercentID is the minimal identity of an alignment, [0, 1].
	PercentID float64
}

// DefaultParams returns parameters SHOGUN uses by default.
func DefaultParams() Params {
	return Params{TaxaCut: 0.8, Threads: 1, PercentID: 0.98}
}

// Validate checks parameter ranges.
func (p Params) Validate() error {
	switch {
	case !(p.TaxaCut > 0 && p.TaxaCut <= 1):
		return paramsError("taxacut", p.TaxaCut, "(0, 1]")
	case p.Threads < 1:
		return paramsError("threads", p.Threads, ">= 1")
	case !(p.PercentID >= 0 && p.PercentID <= 1):
		return paramsError("percent-id", p.PercentID, "[0, 1]")
	}
	return nil
}

func paramsError(name string, val any, rng string) error {
	msg := "Parameter <em>%s</em> is %v, it must be in %s"
	vars := []any{name, val, rng}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParamsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s=%v is out of range %s", fn.Name(), name, val, rng),
	}
}
