package cmd

import (
	adapterobsfile "wmsession/internal/adapters/obsfile"
	adapterstorage "wmsession/internal/adapters/storage"
	"wmsession/internal/config"
	"wmsession/internal/logging"
	"wmsession/internal/ports"
	"wmsession/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Catalog ports.SaveCatalog
	Reader  ports.SessionFileReader
	Writer  ports.SessionFileWriter

	// Services
	CatalogService *services.CatalogService

	// Values resolved from settings
	DBPath       string
	EagerVendors []string // nil keeps the coordinator default
	GSMPriority  uint8
	SessionsDir  string
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	dbPath := config.GetDBPath()
	if settings.DBPath != "" {
		dbPath = settings.DBPath
	}
	sessionsDir := config.GetSessionsDir()
	if settings.SessionsDir != "" {
		sessionsDir = settings.SessionsDir
	}
	priority := services.DefaultGSMPriority
	if settings.GSMPriority != nil {
		priority = uint8(*settings.GSMPriority)
	}

	catalog, err := adapterstorage.NewSQLiteCatalog(dbPath)
	if err != nil {
		return nil, err
	}

	reader := adapterobsfile.NewReader()
	writer := adapterobsfile.NewWriter()

	logging.Logger.Debug("Container initialized",
		"db_path", dbPath,
		"sessions_dir", sessionsDir,
		"gsm_priority", priority)

	return &Container{
		Catalog:        catalog,
		CatalogService: services.NewCatalogService(catalog, reader),
		DBPath:         dbPath,
		EagerVendors:   settings.EagerSnapshotVendors,
		GSMPriority:    priority,
		Reader:         reader,
		SessionsDir:    sessionsDir,
		Writer:         writer,
	}, nil
}

// CoordinatorOptions returns the coordinator options derived from settings
func (c *Container) CoordinatorOptions() []services.CoordinatorOption {
	opts := []services.CoordinatorOption{
		services.WithCatalog(c.Catalog),
		services.WithPriority(c.GSMPriority),
	}
	if c.EagerVendors != nil {
		opts = append(opts, services.WithEagerSnapshotVendors(c.EagerVendors...))
	}
	return opts
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Catalog != nil {
		return c.Catalog.Close()
	}
	return nil
}
