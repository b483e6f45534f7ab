package elements

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryElementRepository keeps elements and contents in process. Contents
// are stored encoded so callers never share essence values with the store.
type MemoryElementRepository struct {
	mu       sync.RWMutex
	elements map[uuid.UUID]*Element
	contents map[uuid.UUID]*Content
}

func NewMemoryElementRepository() *MemoryElementRepository {
	return &MemoryElementRepository{
		elements: make(map[uuid.UUID]*Element),
		contents: make(map[uuid.UUID]*Content),
	}
}

func (m *MemoryElementRepository) Create(_ context.Context, element *Element) (*Element, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *element
	stored.Contents = nil
	staged := make([]*Content, 0, len(element.Contents))
	for _, content := range element.Contents {
		copied := *content
		copied.ElementID = stored.ID
		if err := copied.encode(); err != nil {
			return nil, err
		}
		copied.Essence = nil
		staged = append(staged, &copied)
	}
	m.elements[stored.ID] = &stored
	for _, content := range staged {
		m.contents[content.ID] = content
	}
	return m.load(stored.ID)
}

func (m *MemoryElementRepository) GetByID(_ context.Context, id uuid.UUID) (*Element, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.load(id)
}

func (m *MemoryElementRepository) ListByPage(_ context.Context, pageID uuid.UUID) ([]*Element, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Element, 0)
	for id, element := range m.elements {
		if element.PageID != pageID {
			continue
		}
		loaded, err := m.load(id)
		if err != nil {
			return nil, err
		}
		out = append(out, loaded)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *MemoryElementRepository) NextPosition(_ context.Context, pageID uuid.UUID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	next := 1
	for _, element := range m.elements {
		if element.PageID == pageID && element.Position >= next {
			next = element.Position + 1
		}
	}
	return next, nil
}

func (m *MemoryElementRepository) CreateContent(_ context.Context, content *Content) (*Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.elements[content.ElementID]; !ok {
		return nil, &NotFoundError{Resource: "element", Key: content.ElementID.String()}
	}
	for _, existing := range m.contents {
		if existing.ElementID == content.ElementID && existing.Name == content.Name {
			return nil, ErrContentExists
		}
	}
	copied := *content
	if err := copied.encode(); err != nil {
		return nil, err
	}
	copied.Essence = nil
	m.contents[copied.ID] = &copied
	return m.loadContent(copied.ID)
}

func (m *MemoryElementRepository) GetContent(_ context.Context, id uuid.UUID) (*Content, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadContent(id)
}

func (m *MemoryElementRepository) UpdateContent(_ context.Context, content *Content) (*Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.contents[content.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "content", Key: content.ID.String()}
	}
	copied := *existing
	copied.Essence = content.Essence
	copied.Settings = content.Settings.Clone()
	copied.UpdatedAt = content.UpdatedAt
	if err := copied.encode(); err != nil {
		return nil, err
	}
	copied.Essence = nil
	m.contents[copied.ID] = &copied
	return m.loadContent(copied.ID)
}

func (m *MemoryElementRepository) load(id uuid.UUID) (*Element, error) {
	element, ok := m.elements[id]
	if !ok {
		return nil, &NotFoundError{Resource: "element", Key: id.String()}
	}
	out := *element
	out.Contents = nil
	for contentID, content := range m.contents {
		if content.ElementID != id {
			continue
		}
		loaded, err := m.loadContent(contentID)
		if err != nil {
			return nil, err
		}
		out.Contents = append(out.Contents, loaded)
	}
	sortContents(out.Contents)
	return &out, nil
}

func (m *MemoryElementRepository) loadContent(id uuid.UUID) (*Content, error) {
	content, ok := m.contents[id]
	if !ok {
		return nil, &NotFoundError{Resource: "content", Key: id.String()}
	}
	out := *content
	out.Payload = append([]byte(nil), content.Payload...)
	out.Settings = content.Settings.Clone()
	if err := out.decode(); err != nil {
		return nil, err
	}
	return &out, nil
}

func sortContents(contents []*Content) {
	sort.SliceStable(contents, func(i, j int) bool {
		if contents[i].Position == contents[j].Position {
			return contents[i].Name < contents[j].Name
		}
		return contents[i].Position < contents[j].Position
	})
}
