package config

import (
	"context"
	"log/slog"

	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/repository/firestore"
	"github.com/javagrunt/javagrunt/pkg/repository/memory"
	"github.com/javagrunt/javagrunt/pkg/repository/redis"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	StoreMemory    = "memory"
	StoreRedis     = "redis"
	StoreFirestore = "firestore"
)

// Store selects the key-value backend behind the org registry and webhook log
type Store struct {
	backend             string
	redisURL            string `masq:"secret"`
	firestoreProjectID  string
	firestoreDatabaseID string
}

func (x *Store) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "store",
			Usage:       "Registry backend [memory|redis|firestore]",
			Category:    "Store",
			Destination: &x.backend,
			Sources:     cli.EnvVars("JAVAGRUNT_STORE"),
			Value:       StoreRedis,
		},
		&cli.StringFlag{
			Name:        "redis-url",
			Usage:       "Redis URL, e.g. redis://localhost:6379/0",
			Category:    "Store",
			Destination: &x.redisURL,
			Sources:     cli.EnvVars("JAVAGRUNT_REDIS_URL"),
			Value:       "redis://localhost:6379/0",
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Google Cloud project ID of the Firestore database",
			Category:    "Store",
			Destination: &x.firestoreProjectID,
			Sources:     cli.EnvVars("JAVAGRUNT_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Store",
			Destination: &x.firestoreDatabaseID,
			Sources:     cli.EnvVars("JAVAGRUNT_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
		},
	}
}

// NewStore opens the configured backend. The returned closer is never nil.
func (x *Store) NewStore(ctx context.Context) (interfaces.KVStore, func(), error) {
	switch x.backend {
	case StoreMemory:
		logging.From(ctx).Warn("Using in-memory store, registry is lost on restart")
		return memory.New(), func() {}, nil

	case StoreRedis:
		store, err := redis.New(ctx, x.redisURL)
		if err != nil {
			return nil, nil, err
		}
		return store, closer(ctx, store.Close), nil

	case StoreFirestore:
		if x.firestoreProjectID == "" {
			return nil, nil, goerr.Wrap(types.ErrConfiguration, "--firestore-project-id is required for firestore store")
		}
		store, err := firestore.New(ctx, x.firestoreProjectID, x.firestoreDatabaseID)
		if err != nil {
			return nil, nil, err
		}
		return store, closer(ctx, store.Close), nil

	default:
		return nil, nil, goerr.Wrap(types.ErrConfiguration, "unknown store backend", goerr.V("store", x.backend))
	}
}

func closer(ctx context.Context, fn func() error) func() {
	return func() {
		if err := fn(); err != nil {
			logging.From(ctx).Warn("failed to close store", "error", err)
		}
	}
}

func (x Store) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.Bool("redisURL", x.redisURL != ""),
		slog.String("firestoreProjectID", x.firestoreProjectID),
		slog.String("firestoreDatabaseID", x.firestoreDatabaseID),
	)
}
