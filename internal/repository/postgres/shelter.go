package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// ShelterRepository implements domain.ShelterRepository on PostgreSQL.
type ShelterRepository struct {
	pool *pgxpool.Pool
}

func (r *ShelterRepository) List(ctx context.Context) ([]domain.Shelter, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, address, district, lat, lng, capacity, phone
		 FROM shelters ORDER BY district, name`)
	if err != nil {
		return nil, fmt.Errorf("list shelters: %w", err)
	}
	defer rows.Close()

	var shelters []domain.Shelter
	for rows.Next() {
		var s domain.Shelter
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.District, &s.Lat, &s.Lng, &s.Capacity, &s.Phone); err != nil {
			return nil, fmt.Errorf("scan shelter: %w", err)
		}
		shelters = append(shelters, s)
	}
	return shelters, rows.Err()
}

func (r *ShelterRepository) GetByID(ctx context.Context, id int64) (*domain.Shelter, error) {
	s := &domain.Shelter{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, address, district, lat, lng, capacity, phone
		 FROM shelters WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Address, &s.District, &s.Lat, &s.Lng, &s.Capacity, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get shelter: %w", err)
	}
	return s, nil
}

func (r *ShelterRepository) Create(ctx context.Context, shelter *domain.Shelter) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO shelters (name, address, district, lat, lng, capacity, phone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		shelter.Name, shelter.Address, shelter.District, shelter.Lat, shelter.Lng, shelter.Capacity, shelter.Phone,
	).Scan(&shelter.ID)
	if err != nil {
		return fmt.Errorf("insert shelter: %w", err)
	}
	return nil
}

func (r *ShelterRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM shelters").Scan(&count); err != nil {
		return 0, fmt.Errorf("count shelters: %w", err)
	}
	return count, nil
}
