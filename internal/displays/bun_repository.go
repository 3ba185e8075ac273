package displays

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewDisplayRepository creates the generic bun repository for displays.
func NewDisplayRepository(db *bun.DB) repository.Repository[*Display] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Display]{
		NewRecord:          func() *Display { return &Display{} },
		GetID:              func(display *Display) uuid.UUID { return display.ID },
		SetID:              func(display *Display, id uuid.UUID) { display.ID = id },
		GetIdentifier:      func() string { return "display_key" },
		GetIdentifierValue: func(display *Display) string { return display.DisplayKey },
	})
}

// BunRepository implements Repository with optional caching.
type BunRepository struct {
	repo repository.Repository[*Display]
}

var _ Repository = (*BunRepository)(nil)

// NewBunRepository creates a display repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a display repository with caching support.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := NewDisplayRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{repo: base}
}

func (r *BunRepository) Create(ctx context.Context, display *Display) (*Display, error) {
	record, err := r.repo.Create(ctx, display)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunRepository) Update(ctx context.Context, display *Display) (*Display, error) {
	record, err := r.repo.Update(ctx, display)
	if err != nil {
		return nil, mapRepositoryError(err, "display", display.ID.String())
	}
	return record, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Display, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "display", id.String())
	}
	return record, nil
}

func (r *BunRepository) GetByKey(ctx context.Context, key string) (*Display, error) {
	record, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, "display", key)
	}
	return record, nil
}

func (r *BunRepository) ListByGallery(ctx context.Context, galleryID string) ([]*Display, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.gallery_custom = ?", galleryID)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("display_key ASC")
		}),
	)
	return records, err
}

func (r *BunRepository) List(ctx context.Context) ([]*Display, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("display_key ASC")
	}))
	return records, err
}

func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &Display{ID: id}); err != nil {
		return mapRepositoryError(err, "display", id.String())
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

// EnsureSchema creates the displays table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().Model((*Display)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("displays: create table: %w", err)
	}
	return nil
}
