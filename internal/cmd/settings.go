package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"wmsession/internal/config"
	"wmsession/internal/services"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options"`
	Show SettingsShowCmd `cmd:"show" help:"Show the effective settings as JSON" default:"1"`
}

// SettingsShowCmd prints the settings in effect after applying defaults
type SettingsShowCmd struct{}

type effectiveSettings struct {
	DBPath               string   `json:"db_path"`
	Debug                bool     `json:"debug"`
	EagerSnapshotVendors []string `json:"eager_snapshot_vendors"`
	GSMPriority          uint8    `json:"gsm_priority"`
	MaxLogFiles          int      `json:"max_log_files"`
	SessionsDir          string   `json:"sessions_dir"`
	SettingsFile         string   `json:"settings_file"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI, container *Container) error {
	vendors := container.EagerVendors
	if vendors == nil {
		vendors = services.DefaultEagerSnapshotVendors
	}
	return printJSON(effectiveSettings{
		DBPath:               container.DBPath,
		Debug:                cli.Debug,
		EagerSnapshotVendors: vendors,
		GSMPriority:          container.GSMPriority,
		MaxLogFiles:          cli.MaxLogFiles,
		SessionsDir:          container.SessionsDir,
		SettingsFile:         config.GetSettingsPath(),
	})
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run() error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure wmsession.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}
