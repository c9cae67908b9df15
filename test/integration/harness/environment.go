package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own
// WMSESSION_HOME and data directory.
type TestEnvironment struct {
	DataHome string
	Home     string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated environment under t.TempDir()
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	return &TestEnvironment{
		DataHome: filepath.Join(root, "data"),
		Home:     filepath.Join(root, "home"),
		tb:       tb,
	}
}

// Environ returns the process environment with every WMSESSION_* variable
// replaced by the isolated values
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3)
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "WMSESSION_") || key == "XDG_DATA_HOME" {
			continue
		}
		env = append(env, kv)
	}

	return append(env,
		"WMSESSION_HOME="+e.Home,
		"WMSESSION_DEBUG=",
		"XDG_DATA_HOME="+e.DataHome,
	)
}

// SessionsDir returns where generated session files are written
func (e *TestEnvironment) SessionsDir() string {
	return filepath.Join(e.DataHome, "wmsession", "sessions")
}

// WriteFile writes content to name inside the environment and returns its path
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()

	path := filepath.Join(filepath.Dir(e.Home), name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// WriteSettings writes settings.json into WMSESSION_HOME
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()

	if err := os.MkdirAll(e.Home, 0755); err != nil {
		e.tb.Fatalf("Failed to create home: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.Home, "settings.json"), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}
