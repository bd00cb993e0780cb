package health

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/numbershield/numbershield/pkg/storage"
	"github.com/redis/go-redis/v9"
)

// PoolChecker returns a health check function for a pgx connection pool
func PoolChecker(pool *pgxpool.Pool) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return pool.Ping(ctx)
	}
}

// DatabaseChecker returns a health check function for a database/sql handle
func DatabaseChecker(db *sql.DB) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	}
}

// RedisChecker returns a health check function for Redis
func RedisChecker(client *redis.Client) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err()
	}
}

// NATSChecker returns a health check function for the NATS connection
func NATSChecker(nc *nats.Conn) func() error {
	return func() error {
		if nc == nil || !nc.IsConnected() {
			return nats.ErrConnectionClosed
		}
		return nil
	}
}

// StorageChecker returns a health check function for object storage.
// A bounded single-object listing doubles as a permission check.
func StorageChecker(store storage.Storage) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err := store.List(ctx, storage.HighRiskPrefix, 1)
		return err
	}
}
