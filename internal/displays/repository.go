package displays

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Repository persists display configurations.
type Repository interface {
	Create(ctx context.Context, display *Display) (*Display, error)
	Update(ctx context.Context, display *Display) (*Display, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Display, error)
	GetByKey(ctx context.Context, key string) (*Display, error)
	ListByGallery(ctx context.Context, galleryID string) ([]*Display, error)
	List(ctx context.Context) ([]*Display, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotFoundError is returned when a display cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
