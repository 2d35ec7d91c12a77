package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptShogunPath sets the SHOGUN executable.
func OptShogunPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Shogun Path", s) {
			c.Shogun.Path = s
		}
	}
}

// OptBowtie2BuildPath sets the bowtie2-build executable.
func OptBowtie2BuildPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Bowtie2 Build Path", s) {
			c.Shogun.Bowtie2BuildPath = s
		}
	}
}

// OptTaxaCut sets the consensus fraction, it must be in (0.0, 1.0].
func OptTaxaCut(f float64) Option {
	return func(c *Config) {
		if isValidFraction("Shogun TaxaCut", f, false) {
			c.Shogun.TaxaCut = f
		}
	}
}

// OptThreads sets the number of threads for SHOGUN.
func OptThreads(i int) Option {
	return func(c *Config) {
		if isValidInt("Shogun Threads", i) {
			c.Shogun.Threads = i
		}
	}
}

// OptPercentID sets minimal percent identity, it must be in [0.0, 1.0].
func OptPercentID(f float64) Option {
	return func(c *Config) {
		if isValidFraction("Shogun PercentID", f, true) {
			c.Shogun.PercentID = f
		}
	}
}

// OptOutputFormat sets the format of exported tables.
// Valid values: "biom", "tsv".
func OptOutputFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Format", s) {
			c.Output.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptTmpDir sets the parent directory of staging directories.
func OptTmpDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Temporary Directory", s) {
			c.TmpDir = s
		}
	}
}

// OptLedger turns the provenance ledger on or off.
func OptLedger(b bool) Option {
	return func(c *Config) {
		c.Ledger = b
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptKeepStaging keeps staging directories after runs.
// Runtime-only field - not in ToOptions().
func OptKeepStaging(b bool) Option {
	return func(c *Config) {
		c.KeepStaging = b
	}
}

// OptWithProgress shows progress bars during staging.
// Runtime-only field - not in ToOptions().
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.WithProgress = b
	}
}

// OptHomeDir sets the home directory for config, data, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
