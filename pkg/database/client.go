// Package database provides the PostgreSQL client, migrations, and the
// channel/stream store.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
)

// Pool settings. The process holds at most a handful of concurrent
// handlers, so the defaults stay small.
const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
	connMaxIdleTime = 5 * time.Minute
)

// Client wraps the database connection pool.
type Client struct {
	db *sql.DB
}

// DB returns the underlying pool for health checks and tests.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// NewClient opens a pooled connection to databaseURL, verifies it, and
// applies pending migrations.
func NewClient(ctx context.Context, databaseURL string) (*Client, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{db: db}, nil
}

// Health pings the database and returns basic pool statistics.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return map[string]any{"status": "unhealthy"}, err
	}
	stats := c.db.Stats()
	return map[string]any{
		"status":           "healthy",
		"response_time_ms": time.Since(start).Milliseconds(),
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
	}, nil
}
