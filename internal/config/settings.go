package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Settings represents the structure of $WMSESSION_HOME/settings.json
type Settings struct {
	DBPath               string      `json:"db_path,omitempty"`
	Debug                *bool       `json:"debug,omitempty"`
	EagerSnapshotVendors StringArray `json:"eager_snapshot_vendors,omitempty"`
	GSMPriority          *int        `json:"gsm_priority,omitempty"`
	MaxLogFiles          *int        `json:"max_log_files,omitempty"`
	SessionsDir          string      `json:"sessions_dir,omitempty"`
}

// Validate checks values that cannot be represented on the wire
func (s *Settings) Validate() error {
	if s.GSMPriority != nil && (*s.GSMPriority < 0 || *s.GSMPriority > 255) {
		return fmt.Errorf("gsm_priority must be between 0 and 255, got %d", *s.GSMPriority)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files cannot be negative, got %d", *s.MaxLogFiles)
	}
	for _, vendor := range s.EagerSnapshotVendors {
		if strings.TrimSpace(vendor) == "" {
			return fmt.Errorf("eager_snapshot_vendors contains empty value")
		}
	}
	return nil
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $WMSESSION_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads and validates settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}
	if settings.SessionsDir != "" {
		settings.SessionsDir = ExpandPath(settings.SessionsDir)
	}

	return &settings, nil
}

// SaveSettings saves settings to $WMSESSION_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
