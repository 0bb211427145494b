package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// ContactService manages a user's personal emergency contact list.
type ContactService struct {
	contacts domain.EmergencyContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contacts domain.EmergencyContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// Add creates a contact owned by userID.
func (s *ContactService) Add(ctx context.Context, userID, name, phone, relation string) (*domain.EmergencyContact, error) {
	if err := validateContact(name, phone); err != nil {
		return nil, err
	}

	contact := &domain.EmergencyContact{
		UserID:   userID,
		Name:     strings.TrimSpace(name),
		Phone:    strings.TrimSpace(phone),
		Relation: strings.TrimSpace(relation),
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

// List returns the contacts owned by userID.
func (s *ContactService) List(ctx context.Context, userID string) ([]domain.EmergencyContact, error) {
	return s.contacts.ListByUser(ctx, userID)
}

// Update modifies a contact. A contact owned by another user is
// reported as not found rather than forbidden.
func (s *ContactService) Update(ctx context.Context, userID string, id int64, name, phone, relation string) (*domain.EmergencyContact, error) {
	if err := validateContact(name, phone); err != nil {
		return nil, err
	}

	contact, err := s.ownedContact(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	contact.Name = strings.TrimSpace(name)
	contact.Phone = strings.TrimSpace(phone)
	contact.Relation = strings.TrimSpace(relation)

	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return contact, nil
}

// Delete removes a contact owned by userID.
func (s *ContactService) Delete(ctx context.Context, userID string, id int64) error {
	if _, err := s.ownedContact(ctx, userID, id); err != nil {
		return err
	}
	return s.contacts.Delete(ctx, id)
}

func (s *ContactService) ownedContact(ctx context.Context, userID string, id int64) (*domain.EmergencyContact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return contact, nil
}

func validateContact(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: contact name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: contact phone is required", domain.ErrInvalidInput)
	}
	return nil
}
