package memory

import (
	"context"
	"sync"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// CertificateRepository implements domain.CertificateRepository in memory.
type CertificateRepository struct {
	mu     sync.RWMutex
	byUser map[string]domain.Certificate
}

// NewCertificateRepository creates an empty in-memory certificate
// repository.
func NewCertificateRepository() *CertificateRepository {
	return &CertificateRepository{byUser: make(map[string]domain.Certificate)}
}

func (r *CertificateRepository) Create(_ context.Context, cert *domain.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// First issuance wins; re-issuing reads the existing record back.
	if _, ok := r.byUser[cert.UserID]; !ok {
		r.byUser[cert.UserID] = *cert
	}
	return nil
}

func (r *CertificateRepository) GetByUser(_ context.Context, userID string) (*domain.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cert, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &cert, nil
}
