package domain

import "context"

// Shelter is an emergency shelter shown on the shelter map.
type Shelter struct {
	ID       int64
	Name     string
	Address  string
	District string
	Lat      float64
	Lng      float64
	Capacity int
	Phone    string
}

// ShelterRepository defines persistence operations for shelters.
type ShelterRepository interface {
	List(ctx context.Context) ([]Shelter, error)
	GetByID(ctx context.Context, id int64) (*Shelter, error)
	Create(ctx context.Context, shelter *Shelter) error
	Count(ctx context.Context) (int, error)
}
