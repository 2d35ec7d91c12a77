package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnshogun"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnshogun by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory for persistent application data.
// Returns ~/.local/share/gnshogun by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnshogun/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnshogun/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// LedgerFilePath returns the path to the provenance ledger database.
func LedgerFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "ledger.sqlite")
}
