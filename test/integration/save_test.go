package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wmsession/test/integration/harness"
)

func TestSave(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	snapshot := env.WriteFile("windows.yaml", snapshotFile)

	result := harness.RunCommand(t, env, "save", "--snapshot", snapshot, "--restart", "/usr/bin/wm --replace")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result,
		"Result: saved",
		"Windows: 3",
		"Restart command: /usr/bin/wm --replace --sm-client-id",
		"--sm-save-file "+env.SessionsDir())

	files, err := filepath.Glob(filepath.Join(env.SessionsDir(), "*.obs"))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	info, err := os.Stat(env.SessionsDir())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestSave_GlobalScopeWritesNothing(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	snapshot := env.WriteFile("windows.yaml", snapshotFile)

	result := harness.RunCommand(t, env, "save", "--snapshot", snapshot, "--scope", "global")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Global save, no session file written")

	files, _ := filepath.Glob(filepath.Join(env.SessionsDir(), "*.obs"))
	assert.Empty(t, files)
}

func TestSave_ResumesSessionFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	snapshot := env.WriteFile("windows.yaml", snapshotFile)
	saveFile := env.WriteFile("sessions/resumed.obs", sessionFile)

	result := harness.RunCommand(t, env,
		"--sm-client-id", "resumed-id",
		"--sm-save-file", saveFile,
		"save", "--snapshot", snapshot)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Client ID: resumed-id", "Session file: "+saveFile)

	inspect := harness.RunCommand(t, env, "inspect", saveFile, "--no-dedup")
	harness.AssertSuccess(t, inspect)
	harness.AssertStdoutContains(t, inspect, "Total: 3 records", "new-window")
}

func TestSave_Quit(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	snapshot := env.WriteFile("windows.yaml", snapshotFile)

	result := harness.RunCommand(t, env, "save", "--snapshot", snapshot, "--quit")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Result: saved")

	list := harness.RunCommand(t, env, "sessions", "list")
	harness.AssertSuccess(t, list)
	harness.AssertStdoutContains(t, list, "Total: 1 saves")
}

func TestSave_Failures(t *testing.T) {
	tests := []struct {
		name   string
		args   func(env *harness.TestEnvironment) []string
		stderr string
	}{
		{
			name: "session management disabled",
			args: func(env *harness.TestEnvironment) []string {
				return []string{"--sm-disable", "save", "--snapshot", env.WriteFile("w.yaml", snapshotFile)}
			},
			stderr: "session management is disabled",
		},
		{
			name: "invalid snapshot",
			args: func(env *harness.TestEnvironment) []string {
				return []string{"save", "--snapshot", env.WriteFile("w.yaml", "windows: [")}
			},
			stderr: "failed to parse window snapshot",
		},
		{
			name: "unwritable sessions directory",
			args: func(env *harness.TestEnvironment) []string {
				return []string{
					"--sm-save-file", filepath.Join(env.Home, "missing", "dir", "s.obs"),
					"save", "--snapshot", env.WriteFile("w.yaml", snapshotFile),
				}
			},
			stderr: "failed to save session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args(env)...)

			harness.AssertFailure(t, result)
			harness.AssertStderrContains(t, result, tt.stderr)
		})
	}
}
