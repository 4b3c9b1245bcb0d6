// Package bootstrap wires shared runtime dependencies for the server
// and the command-line tools.
package bootstrap

import (
	"context"
	"fmt"

	"fitflow/internal/cache"
	"fitflow/internal/config"
	"fitflow/internal/database"
	"fitflow/internal/repository"
	"fitflow/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedTrivia inserts the built-in trivia question bank when the
	// table is empty.
	SeedTrivia bool
}

// InitRuntime connects to the database and Redis and runs built-in
// seeding. The Redis client is nil when the cache is unreachable; the
// application degrades to uncached operation.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	if opts.SeedTrivia {
		if err := seed.EnsureTrivia(context.Background(), repository.NewTriviaRepository(db)); err != nil {
			return nil, nil, fmt.Errorf("failed to seed trivia bank: %w", err)
		}
	}

	return db, redisClient, nil
}
