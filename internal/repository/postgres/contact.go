package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// EmergencyContactRepository implements domain.EmergencyContactRepository
// on PostgreSQL.
type EmergencyContactRepository struct {
	pool *pgxpool.Pool
}

func (r *EmergencyContactRepository) Create(ctx context.Context, contact *domain.EmergencyContact) error {
	now := time.Now().UTC()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO emergency_contacts (user_id, name, phone, relation, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		contact.UserID, contact.Name, contact.Phone, contact.Relation, now, now,
	).Scan(&contact.ID)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	contact.CreatedAt = now
	contact.UpdatedAt = now
	return nil
}

func (r *EmergencyContactRepository) ListByUser(ctx context.Context, userID string) ([]domain.EmergencyContact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, phone, relation, created_at, updated_at
		 FROM emergency_contacts WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.EmergencyContact
	for rows.Next() {
		var c domain.EmergencyContact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Relation, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *EmergencyContactRepository) GetByID(ctx context.Context, id int64) (*domain.EmergencyContact, error) {
	c := &domain.EmergencyContact{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, phone, relation, created_at, updated_at
		 FROM emergency_contacts WHERE id = $1`, id,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Relation, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func (r *EmergencyContactRepository) Update(ctx context.Context, contact *domain.EmergencyContact) error {
	now := time.Now().UTC()
	tag, err := r.pool.Exec(ctx,
		`UPDATE emergency_contacts SET name = $1, phone = $2, relation = $3, updated_at = $4
		 WHERE id = $5`,
		contact.Name, contact.Phone, contact.Relation, now, contact.ID,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	contact.UpdatedAt = now
	return nil
}

func (r *EmergencyContactRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM emergency_contacts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
