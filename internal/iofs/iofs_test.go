package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnshogun/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gnshogun"),
		filepath.Join(tmpDir, ".local", "share", "gnshogun"),
		filepath.Join(tmpDir, ".local", "share", "gnshogun", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err, v)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), v)
	}
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	for range 3 {
		require.NoError(t, EnsureDirs(tmpDir))
	}
}

// TestEnsureDirs_Fails verifies a file in place of the home
// directory is reported.
func TestEnsureDirs_Fails(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	require.NoError(t, os.WriteFile(home, []byte("x"), 0644))

	err := EnsureDirs(home)
	assert.Error(t, err)
}

// TestTouchDir_ExistingDirectory verifies existing directory
// is not modified.
func TestTouchDir_ExistingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	existingDir := filepath.Join(tmpDir, "existing")

	err := os.MkdirAll(existingDir, 0700)
	require.NoError(t, err)

	err = touchDir(existingDir)
	require.NoError(t, err)

	info, err := os.Stat(existingDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

// TestEnsureConfigFile_ContentCorrect verifies config file
// content matches embedded template.
func TestEnsureConfigFile_ContentCorrect(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "gnshogun", "config.yaml")
	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, templates.ConfigYAML, string(content))
}

// TestEnsureConfigFile_Idempotent verifies existing file
// is not overwritten.
func TestEnsureConfigFile_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "gnshogun", "config.yaml")
	customContent := "# Custom config\nshogun:\n  threads: 16\n"
	err := os.WriteFile(configPath, []byte(customContent), 0644)
	require.NoError(t, err)

	require.NoError(t, EnsureConfigFile(tmpDir))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, customContent, string(content))
}

// TestConfigYAML_Valid verifies the template is valid YAML with the
// expected sections.
func TestConfigYAML_Valid(t *testing.T) {
	var res map[string]any
	err := yaml.Unmarshal([]byte(templates.ConfigYAML), &res)
	require.NoError(t, err)

	for _, v := range []string{"shogun", "output", "log", "tmp_dir", "ledger"} {
		assert.Contains(t, res, v)
	}
}
