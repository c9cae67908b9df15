package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"wmsession/internal/domain"
	"wmsession/internal/logging"
	"wmsession/internal/ports"
)

const maxRetries = 3

// SQLiteCatalog implements ports.SaveCatalog using GORM
type SQLiteCatalog struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SaveCatalog = (*SQLiteCatalog)(nil)

// gormLogger routes GORM output to the application logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteCatalog opens (creating if needed) the catalog database
func NewSQLiteCatalog(dbPath string) (*SQLiteCatalog, error) {
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets several window manager instances share the catalog
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&SaveModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteCatalog{db: db}, nil
}

// NewSQLiteCatalogForHome opens the catalog inside a WMSESSION_HOME directory
func NewSQLiteCatalogForHome(home string) (*SQLiteCatalog, error) {
	return NewSQLiteCatalog(filepath.Join(home, "catalog.db"))
}

// Close closes the database connection
func (c *SQLiteCatalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record stores a save, replacing any earlier entry for the same path
func (c *SQLiteCatalog) Record(ctx context.Context, entry domain.SaveEntry) error {
	model := domainToSaveModel(entry)
	return withRetry(func() error {
		err := c.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "path"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"client_id", "saved_at", "scope", "success", "window_count", "updated_at",
				}),
			}).
			Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to record save %s: %w", entry.Path, err)
		}
		return nil
	}, maxRetries)
}

// List returns every recorded save, newest first
func (c *SQLiteCatalog) List(ctx context.Context) ([]domain.SaveEntry, error) {
	var models []SaveModel
	err := withRetry(func() error {
		return c.db.WithContext(ctx).Order("saved_at DESC").Order("path").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	result := make([]domain.SaveEntry, 0, len(models))
	for _, m := range models {
		result = append(result, saveModelToDomain(m))
	}
	return result, nil
}

// Delete removes the entry for path
func (c *SQLiteCatalog) Delete(ctx context.Context, path string) error {
	return withRetry(func() error {
		result := c.db.WithContext(ctx).Where("path = ?", path).Delete(&SaveModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrSaveNotFound, path)
		}
		return nil
	}, maxRetries)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Catalog busy, retrying", "attempt", i+1)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
