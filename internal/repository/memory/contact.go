package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// EmergencyContactRepository implements domain.EmergencyContactRepository
// in memory.
type EmergencyContactRepository struct {
	mu       sync.RWMutex
	nextID   int64
	contacts map[int64]domain.EmergencyContact
}

// NewEmergencyContactRepository creates an empty in-memory contact
// repository.
func NewEmergencyContactRepository() *EmergencyContactRepository {
	return &EmergencyContactRepository{contacts: make(map[int64]domain.EmergencyContact)}
}

func (r *EmergencyContactRepository) Create(_ context.Context, contact *domain.EmergencyContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	contact.ID = r.nextID
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	r.contacts[contact.ID] = *contact
	return nil
}

func (r *EmergencyContactRepository) ListByUser(_ context.Context, userID string) ([]domain.EmergencyContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.EmergencyContact
	for _, c := range r.contacts {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *EmergencyContactRepository) GetByID(_ context.Context, id int64) (*domain.EmergencyContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.contacts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *EmergencyContactRepository) Update(_ context.Context, contact *domain.EmergencyContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[contact.ID]; !ok {
		return domain.ErrNotFound
	}
	contact.UpdatedAt = time.Now().UTC()
	r.contacts[contact.ID] = *contact
	return nil
}

func (r *EmergencyContactRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}
