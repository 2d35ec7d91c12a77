package ioshogun

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnshogun/internal/iostage"
	"github.com/gnames/gnshogun/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCloseStage checks how removal errors combine with the result of
// a run.
func TestCloseStage(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stage")
		require.NoError(t, os.Mkdir(path, 0755))
		ft := table.New("t", nil, nil)
		var err error

		closeStage(&iostage.Dir{Path: path}, &ft, &err)
		require.NoError(t, err)
		assert.NotNil(t, ft)
		assert.NoDirExists(t, path)
	})

	t.Run("removal fails after success", func(t *testing.T) {
		// NUL makes the path invalid for any user, root included.
		dir := &iostage.Dir{Path: "stage\x00dir"}
		ft := table.New("t", nil, nil)
		var err error

		closeStage(dir, &ft, &err)
		require.Error(t, err)
		assert.Nil(t, ft)
	})

	t.Run("removal fails after failure", func(t *testing.T) {
		dir := &iostage.Dir{Path: "stage\x00dir"}
		runErr := errors.New("shogun failed")
		var ft *table.FeatureTable
		err := runErr

		closeStage(dir, &ft, &err)
		assert.Equal(t, runErr, err)
		assert.Nil(t, ft)
	})
}
