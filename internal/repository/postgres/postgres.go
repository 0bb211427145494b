// Package postgres implements the domain repositories on PostgreSQL via
// pgx. It is the shared remote side of progress reconciliation: one row
// per (user, module), visible to every device the user signs in from.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SANTHOSHG-WEB/disaster/internal/repository/postgres/migrations"
)

// DB wraps a pgx connection pool and hands out repositories bound to it.
type DB struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and verifies the connection.
func New(ctx context.Context, dsn string) (*DB, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(pingCtx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Migrate applies all unapplied schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.pool)
}

// Close releases the connection pool.
func (db *DB) Close() error {
	db.pool.Close()
	return nil
}

// Users returns the user repository.
func (db *DB) Users() *UserRepository { return &UserRepository{pool: db.pool} }

// Progress returns the remote progress store.
func (db *DB) Progress() *ProgressStore { return &ProgressStore{pool: db.pool} }

// Contacts returns the emergency contact repository.
func (db *DB) Contacts() *EmergencyContactRepository { return &EmergencyContactRepository{pool: db.pool} }

// Shelters returns the shelter repository.
func (db *DB) Shelters() *ShelterRepository { return &ShelterRepository{pool: db.pool} }

// Certificates returns the certificate repository.
func (db *DB) Certificates() *CertificateRepository { return &CertificateRepository{pool: db.pool} }
