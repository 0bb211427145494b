package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// CertificateRepository implements domain.CertificateRepository on
// PostgreSQL. The user_id unique constraint guarantees at most one
// certificate per learner even under concurrent issuance.
type CertificateRepository struct {
	pool *pgxpool.Pool
}

func (r *CertificateRepository) Create(ctx context.Context, cert *domain.Certificate) error {
	// ON CONFLICT DO NOTHING keeps issuance idempotent; the service reads
	// the surviving record back.
	_, err := r.pool.Exec(ctx,
		`INSERT INTO certificates (id, user_id, recipient_name, issued_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO NOTHING`,
		cert.ID, cert.UserID, cert.RecipientName, cert.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("insert certificate: %w", err)
	}
	return nil
}

func (r *CertificateRepository) GetByUser(ctx context.Context, userID string) (*domain.Certificate, error) {
	cert := &domain.Certificate{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, recipient_name, issued_at
		 FROM certificates WHERE user_id = $1`, userID,
	).Scan(&cert.ID, &cert.UserID, &cert.RecipientName, &cert.IssuedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	return cert, nil
}
