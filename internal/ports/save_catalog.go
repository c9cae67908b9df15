package ports

import (
	"context"

	"wmsession/internal/domain"
)

// SaveCatalog keeps a history of session saves
type SaveCatalog interface {
	Close() error
	Delete(ctx context.Context, path string) error
	List(ctx context.Context) ([]domain.SaveEntry, error)
	Record(ctx context.Context, entry domain.SaveEntry) error
}
