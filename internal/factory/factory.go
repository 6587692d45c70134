package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/luxlife/millionaire-go/internal/catalog"
	"github.com/luxlife/millionaire-go/internal/dependencies/clock"
	"github.com/luxlife/millionaire-go/internal/dependencies/random"
	"github.com/luxlife/millionaire-go/internal/services/directory"
	"github.com/luxlife/millionaire-go/internal/services/economy"
	"github.com/luxlife/millionaire-go/internal/services/progression"
	"github.com/luxlife/millionaire-go/internal/storage"
	"github.com/luxlife/millionaire-go/internal/storage/memory"
	redisstorage "github.com/luxlife/millionaire-go/internal/storage/redis"
	sqlitestorage "github.com/luxlife/millionaire-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Catalog            *catalog.Catalog
	ProgressionService *progression.Service
	DirectoryService   *directory.Service
	EconomyService     *economy.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
	// DirectoryConfig holds configuration for the directory service (optional)
	DirectoryConfig directory.Config
	// ProgressionConfig holds the starting-record values (optional)
	ProgressionConfig progression.Config
	// Catalog is the static item catalog (optional, defaults to the shipped one)
	Catalog *catalog.Catalog
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		sqliteStore, err := sqlitestorage.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	return newWithDependencies(store, clk, rnd, cat, cfg.DirectoryConfig, cfg.ProgressionConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	cat *catalog.Catalog,
	directoryCfg directory.Config,
	progressionCfg progression.Config,
	logger *slog.Logger,
) *App {
	progressionService := progression.New(store, progressionCfg, logger)
	directoryService := directory.New(store, progressionService, clk, rnd, directoryCfg, logger)
	economyService := economy.New(progressionService, cat, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		Catalog:            cat,
		ProgressionService: progressionService,
		DirectoryService:   directoryService,
		EconomyService:     economyService,
	}
}

// Close releases storage resources if the backend holds any
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
