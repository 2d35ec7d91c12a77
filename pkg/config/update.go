package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, KeepStaging, WithProgress).
// Zero numeric values are treated as unset, because viper leaves
// them at zero when config.yaml omits them.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	var f float64

	s = c.Shogun.Path
	if s != "" {
		res = append(res, OptShogunPath(s))
	}
	s = c.Shogun.Bowtie2BuildPath
	if s != "" {
		res = append(res, OptBowtie2BuildPath(s))
	}
	f = c.Shogun.TaxaCut
	if f != 0 {
		res = append(res, OptTaxaCut(f))
	}
	i = c.Shogun.Threads
	if i != 0 {
		res = append(res, OptThreads(i))
	}
	f = c.Shogun.PercentID
	if f != 0 {
		res = append(res, OptPercentID(f))
	}

	s = c.Output.Format
	if s != "" {
		res = append(res, OptOutputFormat(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	s = c.TmpDir
	if s != "" {
		res = append(res, OptTmpDir(s))
	}
	res = append(res, OptLedger(c.Ledger))

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

// isValidFraction checks that f is in (0, 1], or in [0, 1] when
// withZero is true.
func isValidFraction(name string, f float64, withZero bool) bool {
	res := f > 0 && f <= 1
	if withZero && f == 0 {
		res = true
	}
	if !res {
		rng := "(0.0, 1.0]"
		if withZero {
			rng = "[0.0, 1.0]"
		}
		gn.Warn("<em>%s</em> has to be in range %s, ignoring %v", name, rng, f)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Output.Format":   {"biom": s, "tsv": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
