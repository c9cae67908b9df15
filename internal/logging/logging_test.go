package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Helper()
	previous := Logger
	t.Cleanup(func() { Logger = previous })
}

func TestInitialize_Disabled(t *testing.T) {
	resetLogger(t)
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestInitialize_DebugFile(t *testing.T) {
	resetLogger(t)
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, logFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("Session saved", "path", "/s/a.obs")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Session saved"`)
	assert.Contains(t, string(data), `"path":"/s/a.obs"`)
}

func TestInitialize_InheritsEnvironment(t *testing.T) {
	resetLogger(t)
	logFile := filepath.Join(t.TempDir(), "inherited.log")
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvDebugFile, logFile)

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Equal(t, logFile, path)
}

func TestInitialize_RotatedDirectory(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("log directory is under ~/Library/Logs on macOS")
	}
	resetLogger(t)
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")

	path, err := Initialize(true, "", DefaultMaxLogFiles)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(stateHome, "wmsession"), filepath.Dir(path))
	assert.FileExists(t, path)
	assert.Equal(t, ".log", filepath.Ext(path))
}

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(path, nil, 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"3.log", "4.log", "keep.txt"}, names)
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
