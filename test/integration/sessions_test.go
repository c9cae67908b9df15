package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wmsession/test/integration/harness"
)

func saveOnce(t *testing.T, env *harness.TestEnvironment) string {
	t.Helper()
	snapshot := env.WriteFile("windows.yaml", snapshotFile)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "save", "--snapshot", snapshot))

	files, err := filepath.Glob(filepath.Join(env.SessionsDir(), "*.obs"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	return files[0]
}

func TestSessionsList_Empty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "list")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "SAVED AT", "Total: 0 saves")
}

func TestSessionsList_Verify(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	path := saveOnce(t, env)

	result := harness.RunCommand(t, env, "sessions", "list", "--verify", "--format", "json")
	harness.AssertSuccess(t, result)

	var saves []struct {
		Exists      *bool  `json:"exists"`
		Path        string `json:"path"`
		Records     *int   `json:"records"`
		Scope       string `json:"scope"`
		Success     bool   `json:"success"`
		WindowCount int    `json:"window_count"`
	}
	harness.AssertValidJSON(t, result, &saves)
	require.Len(t, saves, 1)
	assert.Equal(t, path, saves[0].Path)
	assert.Equal(t, "both", saves[0].Scope)
	assert.True(t, saves[0].Success)
	assert.Equal(t, 3, saves[0].WindowCount)
	require.NotNil(t, saves[0].Exists)
	assert.True(t, *saves[0].Exists)
	require.NotNil(t, saves[0].Records)
	assert.Equal(t, 3, *saves[0].Records)

	require.NoError(t, os.Remove(path))
	result = harness.RunCommand(t, env, "sessions", "list", "--verify")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "missing")
}

func TestSessionsPrune(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	path := saveOnce(t, env)

	// Nothing is older than the default window
	result := harness.RunCommand(t, env, "sessions", "prune")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Pruned 0 saves")

	result = harness.RunCommand(t, env, "sessions", "prune", "--older-than", "0s", "--delete-files")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Pruned "+path, "Pruned 1 saves, deleted 1 files")

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	list := harness.RunCommand(t, env, "sessions", "list")
	harness.AssertStdoutContains(t, list, "Total: 0 saves")
}
