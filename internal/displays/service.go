package displays

import (
	"context"
	"errors"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-colorbox/internal/formatter"
	"github.com/goliatone/go-colorbox/internal/logging"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

const (
	displaySettingsInvalidCode = "DISPLAY_SETTINGS_INVALID"
	displayKeyInvalidCode      = "DISPLAY_KEY_INVALID"
)

// Service manages stored formatter settings.
type Service interface {
	Save(ctx context.Context, input SaveInput) (*Display, error)
	Get(ctx context.Context, key Key) (*Display, error)
	Resolve(ctx context.Context, key Key) formatter.DisplaySettings
	List(ctx context.Context) ([]*Display, error)
	Delete(ctx context.Context, key Key) error
	GalleryExists(ctx context.Context, galleryID string, exclude Key) bool
}

// SaveInput carries the settings submitted for a display.
type SaveInput struct {
	Key      Key
	Settings formatter.DisplaySettings
}

// ServiceOption configures service behaviour.
type ServiceOption func(*service)

// WithNow overrides the clock.
func WithNow(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSharedGalleries lets several displays use the same custom gallery id.
func WithSharedGalleries(shared bool) ServiceOption {
	return func(s *service) {
		s.shared = shared
	}
}

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		s.logger = logging.EnsureLogger(logger)
	}
}

type service struct {
	repo      Repository
	formatter *formatter.Formatter
	now       func() time.Time
	shared    bool
	logger    interfaces.Logger
}

// NewService wires a display service. The formatter validates submitted settings.
func NewService(repo Repository, f *formatter.Formatter, opts ...ServiceOption) Service {
	s := &service{
		repo:      repo,
		formatter: f,
		now:       time.Now,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.formatter == nil {
		s.formatter = formatter.New(nil)
	}
	return s
}

func (s *service) Save(ctx context.Context, input SaveInput) (*Display, error) {
	if err := input.Key.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "display key invalid").
			WithTextCode(displayKeyInvalidCode)
	}
	key := input.Key.Normalize()
	settings := input.Settings

	var exists formatter.GalleryExistsFunc
	if !s.shared {
		exists = func(ctx context.Context, id string) bool {
			return s.GalleryExists(ctx, id, key)
		}
	}
	if err := s.formatter.UsingGalleryExists(exists).ValidateSettings(ctx, settings); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "display settings invalid").
			WithTextCode(displaySettingsInvalidCode)
	}

	logger := logging.WithFields(s.logger, map[string]any{"display": key.String()})
	now := s.now().UTC()

	existing, err := s.repo.GetByKey(ctx, key.String())
	if err != nil && !IsNotFound(err) {
		logger.Error("colorbox.displays.lookup_failed", "error", err)
		return nil, err
	}

	record := &Display{
		ID:            key.ID(),
		DisplayKey:    key.String(),
		EntityType:    key.EntityType,
		Bundle:        key.Bundle,
		FieldName:     key.Field,
		ViewMode:      key.ViewMode,
		GalleryCustom: claimedGallery(settings),
		Settings:      settings,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if existing == nil {
		created, err := s.repo.Create(ctx, record)
		if err != nil {
			logger.Error("colorbox.displays.create_failed", "error", err)
			return nil, err
		}
		logger.Info("colorbox.displays.created")
		return created, nil
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		logger.Error("colorbox.displays.update_failed", "error", err)
		return nil, err
	}
	logger.Info("colorbox.displays.updated")
	return updated, nil
}

func (s *service) Get(ctx context.Context, key Key) (*Display, error) {
	if err := key.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "display key invalid").
			WithTextCode(displayKeyInvalidCode)
	}
	record, err := s.repo.GetByKey(ctx, key.String())
	if err != nil {
		if IsNotFound(err) {
			return nil, &NotFoundError{Resource: "display", Key: key.String()}
		}
		return nil, err
	}
	return record, nil
}

// Resolve returns stored settings, or the defaults when none are stored or
// the lookup fails.
func (s *service) Resolve(ctx context.Context, key Key) formatter.DisplaySettings {
	record, err := s.Get(ctx, key)
	if err != nil {
		if !IsNotFound(err) {
			s.logger.Warn("colorbox.displays.resolve_failed", "display", key.String(), "error", err)
		}
		return formatter.DefaultSettings()
	}
	return record.Settings
}

func (s *service) List(ctx context.Context) ([]*Display, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, key Key) error {
	record, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, record.ID); err != nil {
		return err
	}
	s.logger.Info("colorbox.displays.deleted", "display", record.DisplayKey)
	return nil
}

// GalleryExists reports whether a display other than exclude claims galleryID.
// Repository failures read as "not taken".
func (s *service) GalleryExists(ctx context.Context, galleryID string, exclude Key) bool {
	if galleryID == "" {
		return false
	}
	records, err := s.repo.ListByGallery(ctx, galleryID)
	if err != nil {
		s.logger.Warn("colorbox.displays.gallery_lookup_failed", "gallery", galleryID, "error", err)
		return false
	}
	excluded := ""
	if exclude.Validate() == nil {
		excluded = exclude.String()
	}
	for _, record := range records {
		if record.DisplayKey != excluded {
			return true
		}
	}
	return false
}

func claimedGallery(settings formatter.DisplaySettings) string {
	if settings.Gallery != formatter.GalleryCustom {
		return ""
	}
	return settings.GalleryCustom
}

// IsNotFound reports whether err is a missing display.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
