package siteconfig

import "github.com/goliatone/go-colorbox/internal/validation"

const settingsSchemaSource = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "colorbox.settings",
  "type": "object",
  "properties": {
    "custom": {
      "type": "object",
      "properties": {
        "style": {"type": "string", "minLength": 1},
        "activate": {"type": ["boolean", "integer"]},
        "transition_type": {"enum": ["elastic", "fade", "none"]},
        "transition_speed": {"type": ["integer", "string"]},
        "opacity": {"type": ["string", "number"]},
        "text_current": {"type": "string"},
        "text_previous": {"type": "string"},
        "text_next": {"type": "string"},
        "text_close": {"type": "string"},
        "overlayclose": {"type": ["boolean", "integer"]},
        "maxwidth": {"type": ["string", "integer"]},
        "maxheight": {"type": ["string", "integer"]},
        "initialwidth": {"type": ["string", "integer"]},
        "initialheight": {"type": ["string", "integer"]},
        "fixed": {"type": ["boolean", "integer"]},
        "scrolling": {"type": ["boolean", "integer"]},
        "slideshow": {
          "type": "object",
          "properties": {
            "slideshow": {"type": ["boolean", "integer"]},
            "auto": {"type": ["boolean", "integer"]},
            "speed": {"type": ["integer", "string"]},
            "text_start": {"type": "string"},
            "text_stop": {"type": "string"}
          }
        }
      }
    },
    "advanced": {
      "type": "object",
      "properties": {
        "mobile_detect": {"type": ["boolean", "integer"]},
        "mobile_device_width": {"type": ["string", "integer"]},
        "caption_trim": {"type": ["boolean", "integer"]},
        "caption_trim_length": {"type": "integer", "minimum": 6},
        "compression_type": {"enum": ["minified", "source", "none"]},
        "visibility": {"enum": [0, 1]},
        "pages": {"type": "string"}
      }
    },
    "extra": {
      "type": "object",
      "properties": {
        "load": {"type": ["boolean", "integer"]},
        "inline": {"type": ["boolean", "integer"]}
      }
    }
  }
}`

var settingsSchema = validation.NewSchema("colorbox.settings.json", []byte(settingsSchemaSource))

// ValidateDocument checks a settings document against the colorbox settings schema.
func ValidateDocument(document map[string]any) error {
	return settingsSchema.ValidateDocument(document)
}
