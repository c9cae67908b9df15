package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"wmsession/internal/domain"
	"wmsession/internal/logging"
	"wmsession/internal/ports"
)

const verifyConcurrency = 8

// SaveStatus is a catalog entry, optionally checked against the file on disk
type SaveStatus struct {
	domain.SaveEntry
	Exists   bool   `json:"exists"`
	Records  int    `json:"records"`
	Verified bool   `json:"verified"`
	Problem  string `json:"problem,omitempty"`
}

// PruneResult reports what a prune removed
type PruneResult struct {
	Entries      []string
	FilesRemoved int
}

// CatalogService lists and prunes recorded saves
type CatalogService struct {
	catalog ports.SaveCatalog
	now     func() time.Time
	reader  ports.SessionFileReader
	remove  func(string) error
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalog ports.SaveCatalog, reader ports.SessionFileReader) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		now:     time.Now,
		reader:  reader,
		remove:  os.Remove,
	}
}

// List returns every recorded save, newest first. With verify set each
// session file is loaded in parallel and its record count reported.
func (s *CatalogService) List(ctx context.Context, verify bool) ([]SaveStatus, error) {
	entries, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]SaveStatus, len(entries))
	for i, entry := range entries {
		statuses[i] = SaveStatus{SaveEntry: entry}
	}
	if !verify {
		return statuses, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(verifyConcurrency)
	for i := range statuses {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.verify(&statuses[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to verify saves: %w", err)
	}

	return statuses, nil
}

// verify loads one session file; each goroutine owns its status
func (s *CatalogService) verify(status *SaveStatus) {
	status.Verified = true
	state, err := s.reader.Read(status.Path)
	if err != nil {
		status.Exists = !errors.Is(err, os.ErrNotExist)
		status.Problem = err.Error()
		logging.Logger.Debug("Save verification failed", "path", status.Path, "error", err)
		return
	}
	status.Exists = true
	status.Records = state.Records.Len()
}

// Prune removes catalog entries saved more than olderThan ago, and their
// session files when deleteFiles is set. Files already gone are not errors.
func (s *CatalogService) Prune(ctx context.Context, olderThan time.Duration, deleteFiles bool) (PruneResult, error) {
	var result PruneResult

	entries, err := s.catalog.List(ctx)
	if err != nil {
		return result, err
	}

	cutoff := s.now().Add(-olderThan)
	for _, entry := range entries {
		if !entry.SavedAt.Before(cutoff) {
			continue
		}

		if deleteFiles {
			if err := s.remove(entry.Path); err == nil {
				result.FilesRemoved++
			} else if !errors.Is(err, os.ErrNotExist) {
				return result, fmt.Errorf("failed to remove session file %s: %w", entry.Path, err)
			}
		}

		if err := s.catalog.Delete(ctx, entry.Path); err != nil && !errors.Is(err, domain.ErrSaveNotFound) {
			return result, err
		}
		result.Entries = append(result.Entries, entry.Path)
		logging.Logger.Info("Pruned save", "path", entry.Path, "saved_at", entry.SavedAt)
	}

	return result, nil
}
