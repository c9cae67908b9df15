package cmd

import (
	"context"
	"fmt"
	"time"

	"wmsession/internal/logging"
)

// SessionsPruneCmd forgets old saves
type SessionsPruneCmd struct {
	DeleteFiles bool          `help:"Also delete the session files"`
	OlderThan   time.Duration `help:"Prune saves older than this (e.g. 72h)" default:"720h"`
}

// Run executes the prune command
func (s *SessionsPruneCmd) Run(container *Container) error {
	logging.Logger.Info("Executing sessions prune command",
		"older_than", s.OlderThan,
		"delete_files", s.DeleteFiles)

	if s.OlderThan < 0 {
		return fmt.Errorf("--older-than cannot be negative")
	}

	result, err := container.CatalogService.Prune(context.Background(), s.OlderThan, s.DeleteFiles)
	for _, path := range result.Entries {
		fmt.Printf("Pruned %s\n", path)
	}
	if err != nil {
		return fmt.Errorf("failed to prune saves: %w", err)
	}

	fmt.Printf("\nPruned %d saves", len(result.Entries))
	if s.DeleteFiles {
		fmt.Printf(", deleted %d files", result.FilesRemoved)
	}
	fmt.Println()
	return nil
}
