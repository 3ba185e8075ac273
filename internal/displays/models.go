package displays

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-colorbox/internal/formatter"
	"github.com/goliatone/go-colorbox/internal/identity"
)

var ErrKeyIncomplete = errors.New("displays: entity type, bundle, field and view mode are required")

// Key addresses the formatter settings of one field in one view mode.
type Key struct {
	EntityType string `json:"entity_type"`
	Bundle     string `json:"bundle"`
	Field      string `json:"field"`
	ViewMode   string `json:"view_mode"`
}

// Normalize trims and lower-cases every part.
func (k Key) Normalize() Key {
	return Key{
		EntityType: strings.ToLower(strings.TrimSpace(k.EntityType)),
		Bundle:     strings.ToLower(strings.TrimSpace(k.Bundle)),
		Field:      strings.ToLower(strings.TrimSpace(k.Field)),
		ViewMode:   strings.ToLower(strings.TrimSpace(k.ViewMode)),
	}
}

func (k Key) Validate() error {
	n := k.Normalize()
	if n.EntityType == "" || n.Bundle == "" || n.Field == "" || n.ViewMode == "" {
		return ErrKeyIncomplete
	}
	return nil
}

// String renders the key as entity_type.bundle.field.view_mode.
func (k Key) String() string {
	n := k.Normalize()
	return n.EntityType + "." + n.Bundle + "." + n.Field + "." + n.ViewMode
}

// ID is the deterministic record id for the key.
func (k Key) ID() uuid.UUID {
	n := k.Normalize()
	return identity.DisplayUUID(n.EntityType, n.Bundle, n.Field, n.ViewMode)
}

// Display is a persisted formatter configuration.
type Display struct {
	bun.BaseModel `bun:"table:colorbox_displays,alias:cd"`

	ID            uuid.UUID                 `bun:",pk,type:uuid" json:"id"`
	DisplayKey    string                    `bun:"display_key,notnull,unique" json:"display_key"`
	EntityType    string                    `bun:"entity_type,notnull" json:"entity_type"`
	Bundle        string                    `bun:"bundle,notnull" json:"bundle"`
	FieldName     string                    `bun:"field_name,notnull" json:"field_name"`
	ViewMode      string                    `bun:"view_mode,notnull" json:"view_mode"`
	GalleryCustom string                    `bun:"gallery_custom" json:"gallery_custom,omitempty"`
	Settings      formatter.DisplaySettings `bun:"settings,type:jsonb,notnull" json:"settings"`
	CreatedAt     time.Time                 `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time                 `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Key returns the display's address.
func (d *Display) Key() Key {
	return Key{EntityType: d.EntityType, Bundle: d.Bundle, Field: d.FieldName, ViewMode: d.ViewMode}
}

// ClaimsGallery reports whether the display groups images under a custom id.
func (d *Display) ClaimsGallery(id string) bool {
	return id != "" && d.GalleryCustom == id
}

func cloneDisplay(d *Display) *Display {
	if d == nil {
		return nil
	}
	cloned := *d
	if d.Settings.MultivalueIndex != nil {
		index := *d.Settings.MultivalueIndex
		cloned.Settings.MultivalueIndex = &index
	}
	return &cloned
}
