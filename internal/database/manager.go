package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DBManager struct {
	pool *pgxpool.Pool
}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

func NewDBManager(ctx context.Context, cfg Config) (*DBManager, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DBManager{pool: pool}, nil
}

func (m *DBManager) Pool() *pgxpool.Pool {
	return m.pool
}

func (m *DBManager) Close() {
	m.pool.Close()
}

// Migrate creates the tables if they do not exist yet. The apps table keeps
// a serial position column so listings preserve insertion order.
func (m *DBManager) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS apps (
			position BIGSERIAL,
			app_id TEXT PRIMARY KEY,
			app_title TEXT NOT NULL,
			app_key TEXT NOT NULL,
			app_env TEXT NOT NULL,
			created_date TIMESTAMPTZ NOT NULL,
			login_user TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_apps_login_user ON apps (login_user)`,
	}

	for _, stmt := range statements {
		if _, err := m.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
