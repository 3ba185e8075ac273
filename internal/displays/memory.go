package displays

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository provides an in-memory implementation of Repository.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*Display
	byKey map[string]uuid.UUID
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository constructs an empty memory-backed repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:  make(map[uuid.UUID]*Display),
		byKey: make(map[string]uuid.UUID),
	}
}

func (r *MemoryRepository) Create(_ context.Context, display *Display) (*Display, error) {
	if display == nil {
		return nil, nil
	}
	cloned := cloneDisplay(display)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[cloned.ID] = cloned
	r.byKey[cloned.DisplayKey] = cloned.ID

	return cloneDisplay(cloned), nil
}

func (r *MemoryRepository) Update(_ context.Context, display *Display) (*Display, error) {
	if display == nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[display.ID]; !ok {
		return nil, &NotFoundError{Resource: "display", Key: display.ID.String()}
	}

	cloned := cloneDisplay(display)
	r.byID[cloned.ID] = cloned
	r.byKey[cloned.DisplayKey] = cloned.ID

	return cloneDisplay(cloned), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Display, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "display", Key: id.String()}
	}
	return cloneDisplay(record), nil
}

func (r *MemoryRepository) GetByKey(_ context.Context, key string) (*Display, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[key]
	if !ok {
		return nil, &NotFoundError{Resource: "display", Key: key}
	}
	return cloneDisplay(r.byID[id]), nil
}

func (r *MemoryRepository) ListByGallery(_ context.Context, galleryID string) ([]*Display, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Display, 0)
	for _, record := range r.byID {
		if record.ClaimsGallery(galleryID) {
			out = append(out, cloneDisplay(record))
		}
	}
	sortDisplays(out)
	return out, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*Display, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Display, 0, len(r.byID))
	for _, record := range r.byID {
		out = append(out, cloneDisplay(record))
	}
	sortDisplays(out)
	return out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return &NotFoundError{Resource: "display", Key: id.String()}
	}
	delete(r.byKey, record.DisplayKey)
	delete(r.byID, id)
	return nil
}

func sortDisplays(list []*Display) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].DisplayKey < list[j].DisplayKey
	})
}
