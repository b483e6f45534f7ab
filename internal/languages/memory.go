package languages

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryLanguageRepository keeps languages in process.
type MemoryLanguageRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*Language
	byCode  map[string]uuid.UUID
	ordered []uuid.UUID
}

// NewMemoryLanguageRepository constructs an empty repository.
func NewMemoryLanguageRepository() *MemoryLanguageRepository {
	return &MemoryLanguageRepository{
		byID:   make(map[uuid.UUID]*Language),
		byCode: make(map[string]uuid.UUID),
	}
}

func (m *MemoryLanguageRepository) Create(_ context.Context, record *Language) (*Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(record.Code)
	if _, exists := m.byCode[key]; exists {
		return nil, ErrCodeExists
	}
	copied := *record
	m.byID[copied.ID] = &copied
	m.byCode[key] = copied.ID
	m.ordered = append(m.ordered, copied.ID)
	out := copied
	return &out, nil
}

func (m *MemoryLanguageRepository) GetByID(_ context.Context, id uuid.UUID) (*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	out := *record
	return &out, nil
}

func (m *MemoryLanguageRepository) GetByCode(_ context.Context, code string) (*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, &NotFoundError{Key: code}
	}
	out := *m.byID[id]
	return &out, nil
}

func (m *MemoryLanguageRepository) GetDefault(_ context.Context) (*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.ordered {
		if record := m.byID[id]; record.Default {
			out := *record
			return &out, nil
		}
	}
	return nil, &NotFoundError{Key: "default"}
}

func (m *MemoryLanguageRepository) List(_ context.Context) ([]*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Language, 0, len(m.ordered))
	for _, id := range m.ordered {
		copied := *m.byID[id]
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
