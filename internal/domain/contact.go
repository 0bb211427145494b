package domain

import (
	"context"
	"time"
)

// EmergencyContact is a learner's personal emergency contact, shown on the
// emergency page alongside the national helplines.
type EmergencyContact struct {
	ID        int64
	UserID    string
	Name      string
	Phone     string
	Relation  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmergencyContactRepository defines persistence operations for contacts.
type EmergencyContactRepository interface {
	Create(ctx context.Context, contact *EmergencyContact) error
	ListByUser(ctx context.Context, userID string) ([]EmergencyContact, error)
	GetByID(ctx context.Context, id int64) (*EmergencyContact, error)
	Update(ctx context.Context, contact *EmergencyContact) error
	Delete(ctx context.Context, id int64) error
}
