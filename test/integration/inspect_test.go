package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wmsession/test/integration/harness"
)

func TestInspect(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	path := env.WriteFile("session.obs", sessionFile)

	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "table format drops ambiguous records",
			args: []string{"inspect", path},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result,
					"firefox-1", "cmd:xterm -ls", "Total: 2 records", "2 dropped as ambiguous")
			},
		},
		{
			name: "json format",
			args: []string{"inspect", path, "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var output struct {
					Desktop      *int     `json:"desktop"`
					DesktopNames []string `json:"desktop_names"`
					Dropped      int      `json:"dropped"`
					Records      []struct {
						Command string `json:"command"`
						Focused bool   `json:"focused"`
						ID      string `json:"id"`
						Shaded  bool   `json:"shaded"`
						Type    string `json:"type"`
					} `json:"records"`
				}
				harness.AssertValidJSON(t, result, &output)

				require.NotNil(t, output.Desktop)
				assert.Equal(t, 1, *output.Desktop)
				assert.Equal(t, []string{"web", "mail"}, output.DesktopNames)
				assert.Equal(t, 2, output.Dropped)
				require.Len(t, output.Records, 2)
				assert.Equal(t, "firefox-1", output.Records[0].ID)
				assert.True(t, output.Records[0].Focused)
				assert.Equal(t, "normal", output.Records[0].Type)
				assert.Equal(t, "xterm -ls", output.Records[1].Command)
				assert.True(t, output.Records[1].Shaded)
			},
		},
		{
			name: "no dedup keeps every record",
			args: []string{"inspect", path, "--no-dedup"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Total: 4 records")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestInspect_MalformedFile(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	path := env.WriteFile("broken.obs", "<not_a_session/>")

	result := harness.RunCommand(t, env, "inspect", path)

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "malformed session file")
}
