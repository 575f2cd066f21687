package debuglog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "md.log")
	t.Setenv(EnvVar, path)
	require.True(t, Enabled())

	Log("pager %s", "less")
	Log("width %d\n", 80)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "md: pager less\nmd: width 80\n", string(b))
}

func TestLogDisabled(t *testing.T) {
	t.Setenv(EnvVar, "")
	require.False(t, Enabled())
	Log("dropped %d", 1)
}

func TestLogUnopenablePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvVar, dir)
	Log("ignored")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
