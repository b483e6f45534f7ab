package pictures

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryPictureRepository keeps pictures in process, in insertion order.
type MemoryPictureRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*Picture
	ordered []uuid.UUID
}

func NewMemoryPictureRepository() *MemoryPictureRepository {
	return &MemoryPictureRepository{
		byID: make(map[uuid.UUID]*Picture),
	}
}

func (m *MemoryPictureRepository) Create(_ context.Context, record *Picture) (*Picture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *record
	if _, exists := m.byID[copied.ID]; !exists {
		m.ordered = append(m.ordered, copied.ID)
	}
	m.byID[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (m *MemoryPictureRepository) GetByID(_ context.Context, id uuid.UUID) (*Picture, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	out := *record
	return &out, nil
}

func (m *MemoryPictureRepository) List(_ context.Context) ([]*Picture, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Picture, 0, len(m.ordered))
	for _, id := range m.ordered {
		copied := *m.byID[id]
		out = append(out, &copied)
	}
	return out, nil
}
