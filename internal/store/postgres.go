package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
	_ "github.com/lib/pq" // PostgreSQL driver
)

const remoteOpTimeout = 5 * time.Second

// Open connects to Postgres and configures the connection pool.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// EnsureSchema creates the profiles and users tables if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id         TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			email         TEXT PRIMARY KEY,
			name          TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// PostgresRemote is the durable profile tier: one row per identity with the
// full profile as a JSON blob and a server-side update timestamp.
type PostgresRemote struct {
	db *sql.DB
}

func NewPostgresRemote(db *sql.DB) *PostgresRemote {
	return &PostgresRemote{db: db}
}

func (r *PostgresRemote) Fetch(ctx context.Context, identity string) (models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, remoteOpTimeout)
	defer cancel()

	var raw []byte
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM profiles WHERE id = $1", identity,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("fetch profile %s: %w", identity, err)
	}

	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode profile %s: %w", identity, err)
	}
	return p, nil
}

// Upsert writes the full profile blob: insert if absent, complete overwrite
// if present. Last writer wins at profile granularity.
func (r *PostgresRemote) Upsert(ctx context.Context, profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", profile.Email, err)
	}

	ctx, cancel := context.WithTimeout(ctx, remoteOpTimeout)
	defer cancel()

	_, err = r.db.ExecContext(ctx, `
        INSERT INTO profiles (id, data, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (id)
        DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
    `, profile.Email, raw)
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", profile.Email, err)
	}
	return nil
}
