package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors verifies codes, message variables and wrapping of the
// file system errors.
func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")
	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		path string
	}{
		{"CreateDirError", CreateDirError("/home/x/.config", cause),
			errcode.CreateDirError, "/home/x/.config"},
		{"CopyFileError", CopyFileError("/home/x/config.yaml", cause),
			errcode.CopyFileError, "/home/x/config.yaml"},
		{"ReadFileError", ReadFileError("/home/x/config.yaml", cause),
			errcode.ReadFileError, "/home/x/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "%s")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])
			assert.ErrorIs(t, gnErr.Err, cause)
			assert.Contains(t, gnErr.Err.Error(), "from ")
		})
	}
}
