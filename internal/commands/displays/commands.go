package displayscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-colorbox/internal/displays"
	"github.com/goliatone/go-colorbox/internal/formatter"
)

const (
	saveDisplayMessageType   = "colorbox.display.save"
	deleteDisplayMessageType = "colorbox.display.delete"
)

// SaveDisplayCommand stores the formatter settings of one field display.
type SaveDisplayCommand struct {
	EntityType string                    `json:"entity_type"`
	Bundle     string                    `json:"bundle"`
	Field      string                    `json:"field"`
	ViewMode   string                    `json:"view_mode"`
	Settings   formatter.DisplaySettings `json:"settings"`
}

// Type implements command.Message.
func (SaveDisplayCommand) Type() string { return saveDisplayMessageType }

// Validate checks the payload shape. Style and uniqueness checks run in the
// service, which knows the registered styles and stored galleries.
func (m SaveDisplayCommand) Validate() error {
	errs := keyErrors(m.key())
	if m.Settings.Gallery == formatter.GalleryCustom && strings.TrimSpace(m.Settings.GalleryCustom) != "" {
		if err := formatter.ValidateGalleryID(m.Settings.GalleryCustom); err != nil {
			errs[formatter.SettingGalleryCustom] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (m SaveDisplayCommand) key() displays.Key {
	return displays.Key{EntityType: m.EntityType, Bundle: m.Bundle, Field: m.Field, ViewMode: m.ViewMode}
}

// DeleteDisplayCommand removes stored settings so the display falls back to
// the defaults.
type DeleteDisplayCommand struct {
	EntityType    string `json:"entity_type"`
	Bundle        string `json:"bundle"`
	Field         string `json:"field"`
	ViewMode      string `json:"view_mode"`
	IgnoreMissing bool   `json:"ignore_missing,omitempty"`
}

// Type implements command.Message.
func (DeleteDisplayCommand) Type() string { return deleteDisplayMessageType }

func (m DeleteDisplayCommand) Validate() error {
	if errs := keyErrors(m.key()); len(errs) > 0 {
		return errs
	}
	return nil
}

func (m DeleteDisplayCommand) key() displays.Key {
	return displays.Key{EntityType: m.EntityType, Bundle: m.Bundle, Field: m.Field, ViewMode: m.ViewMode}
}

func keyErrors(key displays.Key) validation.Errors {
	errs := validation.Errors{}
	n := key.Normalize()
	required := map[string]string{
		"entity_type": n.EntityType,
		"bundle":      n.Bundle,
		"field":       n.Field,
		"view_mode":   n.ViewMode,
	}
	for name, value := range required {
		if value == "" {
			errs[name] = validation.NewError("colorbox.display."+name+"_required", name+" is required")
		}
	}
	return errs
}
