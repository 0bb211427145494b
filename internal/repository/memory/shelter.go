package memory

import (
	"context"
	"sync"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// ShelterRepository implements domain.ShelterRepository in memory.
type ShelterRepository struct {
	mu       sync.RWMutex
	nextID   int64
	shelters []domain.Shelter
}

// NewShelterRepository creates an empty in-memory shelter repository.
func NewShelterRepository() *ShelterRepository {
	return &ShelterRepository{}
}

func (r *ShelterRepository) List(_ context.Context) ([]domain.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Shelter(nil), r.shelters...), nil
}

func (r *ShelterRepository) GetByID(_ context.Context, id int64) (*domain.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.shelters {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ShelterRepository) Create(_ context.Context, shelter *domain.Shelter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	shelter.ID = r.nextID
	r.shelters = append(r.shelters, *shelter)
	return nil
}

func (r *ShelterRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shelters), nil
}
