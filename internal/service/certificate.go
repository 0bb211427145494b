package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// CertificateService issues completion certificates once a user has
// finished the full course.
type CertificateService struct {
	certs    domain.CertificateRepository
	sessions *SessionManager
	clock    func() time.Time
}

// NewCertificateService creates a new CertificateService.
func NewCertificateService(certs domain.CertificateRepository, sessions *SessionManager) *CertificateService {
	return &CertificateService{
		certs:    certs,
		sessions: sessions,
		clock:    time.Now,
	}
}

// Issue creates a certificate for userID if they have earned one.
// Issuing twice returns the original certificate unchanged.
func (s *CertificateService) Issue(ctx context.Context, userID, recipientName string) (*domain.Certificate, error) {
	recipientName = strings.TrimSpace(recipientName)
	if recipientName == "" {
		return nil, fmt.Errorf("%w: recipient name is required", domain.ErrInvalidInput)
	}

	tracker := s.sessions.TrackerFor(ctx, userID)
	if !tracker.Progress().CertificateEarned {
		return nil, fmt.Errorf("%w: course is not complete", domain.ErrNotEligible)
	}

	cert := &domain.Certificate{
		ID:            uuid.NewString(),
		UserID:        userID,
		RecipientName: recipientName,
		IssuedAt:      s.clock().UTC(),
	}
	if err := s.certs.Create(ctx, cert); err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	// Create is first-write-wins, so read back whichever record
	// actually exists.
	issued, err := s.certs.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	return issued, nil
}

// Get returns the certificate for userID, or ErrNotFound if none has
// been issued.
func (s *CertificateService) Get(ctx context.Context, userID string) (*domain.Certificate, error) {
	return s.certs.GetByUser(ctx, userID)
}
