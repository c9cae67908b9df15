package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wmsession/test/integration/harness"
)

func TestMatch(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	session := env.WriteFile("session.obs", sessionFile)
	snapshot := env.WriteFile("windows.yaml", snapshotFile)

	result := harness.RunCommand(t, env, "match", session, "--snapshot", snapshot, "--format", "json")
	harness.AssertSuccess(t, result)

	var output struct {
		Dropped   int `json:"dropped"`
		Unclaimed int `json:"unclaimed"`
		Windows   []struct {
			Handle  string `json:"handle"`
			Key     string `json:"key"`
			Matched bool   `json:"matched"`
		} `json:"windows"`
	}
	harness.AssertValidJSON(t, result, &output)

	assert.Equal(t, 2, output.Dropped)
	assert.Equal(t, 0, output.Unclaimed)
	require.Len(t, output.Windows, 3)
	assert.True(t, output.Windows[0].Matched)
	assert.Equal(t, "firefox-1", output.Windows[0].Key)
	assert.True(t, output.Windows[1].Matched)
	assert.Equal(t, "xterm -ls", output.Windows[1].Key)
	assert.False(t, output.Windows[2].Matched)
}

func TestMatch_Table(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	session := env.WriteFile("session.obs", sessionFile)
	snapshot := env.WriteFile("windows.yaml", snapshotFile)

	result := harness.RunCommand(t, env, "match", session, "--snapshot", snapshot)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Matched 2 of 3 windows", "800x600+10+20", "new")
}

func TestMatch_RequiresSnapshot(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	session := env.WriteFile("session.obs", sessionFile)

	result := harness.RunCommand(t, env, "match", session)

	harness.AssertFailure(t, result)
}
