package pages

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryPageRepository keeps the page tree in process.
type MemoryPageRepository struct {
	mu    sync.RWMutex
	pages map[uuid.UUID]*Page
}

// NewMemoryPageRepository constructs an empty repository.
func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{
		pages: make(map[uuid.UUID]*Page),
	}
}

func (m *MemoryPageRepository) Append(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	lft := 1
	copied.Depth = 0
	for _, page := range m.pages {
		if page.LanguageID != record.LanguageID {
			continue
		}
		if page.Urlname == record.Urlname {
			return nil, ErrUrlnameExists
		}
		if record.ParentID == nil && page.Rgt >= lft {
			lft = page.Rgt + 1
		}
	}
	if record.ParentID != nil {
		parent, ok := m.pages[*record.ParentID]
		if !ok {
			return nil, &NotFoundError{Key: record.ParentID.String()}
		}
		if parent.LanguageID != record.LanguageID {
			return nil, ErrParentLanguageMismatch
		}
		lft = parent.Rgt
		copied.Depth = parent.Depth + 1
	}

	for _, page := range m.pages {
		if page.LanguageID != record.LanguageID {
			continue
		}
		if page.Lft >= lft {
			page.Lft += 2
		}
		if page.Rgt >= lft {
			page.Rgt += 2
		}
	}

	copied.Lft = lft
	copied.Rgt = lft + 1
	m.pages[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (m *MemoryPageRepository) GetByID(_ context.Context, id uuid.UUID) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	page, ok := m.pages[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	out := *page
	return &out, nil
}

func (m *MemoryPageRepository) GetByUrlname(_ context.Context, languageID uuid.UUID, urlname string) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, page := range m.pages {
		if page.LanguageID == languageID && page.Urlname == urlname {
			out := *page
			return &out, nil
		}
	}
	return nil, &NotFoundError{Key: urlname}
}

func (m *MemoryPageRepository) ListByLanguage(_ context.Context, languageID uuid.UUID) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Page, 0, len(m.pages))
	for _, page := range m.pages {
		if page.LanguageID != languageID {
			continue
		}
		copied := *page
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Lft < out[j].Lft })
	return out, nil
}
