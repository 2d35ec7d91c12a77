// Package config provides configuration management for gnshogun.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Shogun: path, bowtie2_build_path, taxacut, threads, percent_id
//   - Output: format
//   - Log: level, format, destination
//   - General: tmp_dir, ledger, jobs_number
//
// Runtime-only fields (CLI flags only):
//   - KeepStaging, WithProgress (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNSHOGUN_ prefix with underscores for nesting:
//
//	GNSHOGUN_SHOGUN_PATH=/opt/shogun/bin/shogun
//	GNSHOGUN_SHOGUN_THREADS=8
//	GNSHOGUN_OUTPUT_FORMAT=tsv
//	GNSHOGUN_LOG_LEVEL=debug
package config

import (
	"runtime"
)

// Config represents the complete gnshogun configuration.
type Config struct {
	// Shogun contains settings of the external SHOGUN tool.
	Shogun ShogunConfig `mapstructure:"shogun" yaml:"shogun"`

	// Output contains settings for exported feature tables.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// TmpDir is the parent directory for staging directories.
	// Empty value means the system temporary directory.
	TmpDir string `mapstructure:"tmp_dir" yaml:"tmp_dir"`

	// Ledger enables the provenance ledger of runs.
	Ledger bool `mapstructure:"ledger" yaml:"ledger"`

	// JobsNumber is the number of concurrent workers for parallel operations,
	// such as validation of several index directories.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// KeepStaging keeps the staging directory after a run for debugging.
	KeepStaging bool

	// WithProgress shows progress bars while large files are staged.
	WithProgress bool

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ShogunConfig contains the external tool location and the parameters
// passed to it unchanged.
type ShogunConfig struct {
	// Path is the SHOGUN executable, either a name found in PATH or
	// a full path.
	Path string `mapstructure:"path" yaml:"path"`

	// Bowtie2BuildPath is the bowtie2-build executable used to create
	// index directories.
	Bowtie2BuildPath string `mapstructure:"bowtie2_build_path" yaml:"bowtie2_build_path"`

	// TaxaCut is the minimum fraction of assignments that must match the
	// top hit to be accepted as consensus assignment. Range (0.0, 1.0].
	TaxaCut float64 `mapstructure:"taxacut" yaml:"taxacut"`

	// Threads is the number of threads SHOGUN uses internally.
	Threads int `mapstructure:"threads" yaml:"threads"`

	// PercentID rejects a match if its percent identity to the query
	// is lower. Range [0.0, 1.0].
	PercentID float64 `mapstructure:"percent_id" yaml:"percent_id"`
}

// OutputConfig contains settings of the exported feature tables.
type OutputConfig struct {
	// Format can be 'biom' (BIOM 1.0 JSON) or 'tsv' (classic OTU table).
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Shogun: ShogunConfig{
			Path:             "shogun",
			Bowtie2BuildPath: "bowtie2-build",
			TaxaCut:          0.8,
			Threads:          1,
			PercentID:        0.98,
		},
		Output: OutputConfig{
			Format: "biom",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
