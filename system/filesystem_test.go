package system_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/speakeasy-api/jsxlint/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystem_Open_Success(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "App.jsx")
	require.NoError(t, os.WriteFile(path, []byte("<App />"), 0o600))

	f, err := (&system.FileSystem{}).Open(path)
	require.NoError(t, err)
	defer f.Close()

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, "App.jsx", info.Name())
}

func TestFileSystem_Open_Error(t *testing.T) {
	t.Parallel()

	_, err := (&system.FileSystem{}).Open(filepath.Join(t.TempDir(), "missing.jsx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "App.jsx")
	require.NoError(t, os.WriteFile(path, []byte("<App />"), 0o600))

	tests := []struct {
		name     string
		fsys     system.VirtualFS
		path     string
		expected string
	}{
		{name: "host", fsys: &system.FileSystem{}, path: path, expected: "<App />"},
		{name: "nil defaults to host", path: path, expected: "<App />"},
		{
			name:     "map fs",
			fsys:     fstest.MapFS{"src/App.jsx": {Data: []byte("<div />")}},
			path:     "src/App.jsx",
			expected: "<div />",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := system.ReadFile(tt.fsys, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}
