package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"wmsession/internal/config"
	"wmsession/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	SMClientID  string           `name:"sm-client-id" help:"Session manager client id to resume"`
	SMDisable   bool             `name:"sm-disable" help:"Do not connect to a session manager"`
	SMSaveFile  string           `name:"sm-save-file" help:"Session file to restore from and save to" type:"path"`

	Inspect  InspectCmd  `cmd:"inspect" help:"Show the desktop state and window records in a session file"`
	Match    MatchCmd    `cmd:"match" help:"Match live windows from a snapshot against a session file"`
	Save     SaveCmd     `cmd:"save" help:"Save a window snapshot through a full session manager handshake"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage recorded saves (list, prune)"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings (show, meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag holds its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// The restarted window manager inherits these and logs to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Container opens the catalog, whose GORM logger needs logging ready
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	kctx.Bind(container)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		err := c.Container.Close()
		c.Container = nil
		return err
	}
	return nil
}
