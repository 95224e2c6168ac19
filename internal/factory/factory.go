package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/snakeduel/snakeduel-go/internal/dependencies/clock"
	"github.com/snakeduel/snakeduel-go/internal/dependencies/random"
	"github.com/snakeduel/snakeduel-go/internal/services/identity"
	"github.com/snakeduel/snakeduel-go/internal/services/leaderboard"
	"github.com/snakeduel/snakeduel-go/internal/services/ledger"
	"github.com/snakeduel/snakeduel-go/internal/services/livegame"
	"github.com/snakeduel/snakeduel-go/internal/services/room"
	"github.com/snakeduel/snakeduel-go/internal/storage"
	"github.com/snakeduel/snakeduel-go/internal/storage/memory"
	redisstorage "github.com/snakeduel/snakeduel-go/internal/storage/redis"
	"github.com/snakeduel/snakeduel-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	IdentityService    *identity.Service
	LedgerService      *ledger.Service
	LeaderboardService *leaderboard.Service
	LiveGameService    *livegame.Service
	RoomRegistry       *room.Registry
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "sqlite" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// StrictPasswords enables bcrypt verification on login instead of
	// accepting any non-empty password for a known account
	StrictPasswords bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'sqlite' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	var verifier identity.CredentialVerifier = identity.AcceptAnyVerifier{}
	if cfg.StrictPasswords {
		verifier = identity.BcryptVerifier{}
	}

	return newWithDependencies(store, clk, rnd, verifier, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, rnd random.Random, verifier identity.CredentialVerifier, logger *slog.Logger) *App {
	// Create services
	identityService := identity.New(store, rnd, verifier, logger)
	ledgerService := ledger.New(store, clk, rnd, logger)
	leaderboardService := leaderboard.New(ledgerService)
	liveGameService := livegame.New(store)
	roomRegistry := room.NewRegistry(store, rnd, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		IdentityService:    identityService,
		LedgerService:      ledgerService,
		LeaderboardService: leaderboardService,
		LiveGameService:    liveGameService,
		RoomRegistry:       roomRegistry,
	}
}
