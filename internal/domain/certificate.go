package domain

import (
	"context"
	"time"
)

// Certificate records a completed course certificate. Rendering the
// printable certificate is the frontend's job; the backend only keeps the
// issuance record.
type Certificate struct {
	ID            string
	UserID        string
	RecipientName string
	IssuedAt      time.Time
}

// CertificateRepository defines persistence operations for certificates.
type CertificateRepository interface {
	Create(ctx context.Context, cert *Certificate) error
	GetByUser(ctx context.Context, userID string) (*Certificate, error)
}
