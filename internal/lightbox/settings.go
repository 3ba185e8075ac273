package lightbox

import (
	"maps"

	"github.com/goliatone/go-colorbox/internal/siteconfig"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

// SettingsKey is the page-setting namespace the client script reads.
const SettingsKey = "colorbox"

// Settings is the flat option map handed to the client-side lightbox.
type Settings map[string]any

// Mode reports which construction path produced a settings map.
type Mode string

const (
	ModeCustom  Mode = "custom"
	ModeDefault Mode = "default"
)

// Clone returns a shallow copy. Values are scalars.
func (s Settings) Clone() Settings {
	if s == nil {
		return Settings{}
	}
	return maps.Clone(s)
}

// Merge returns a copy of s with other's keys written on top.
func (s Settings) Merge(other Settings) Settings {
	out := s.Clone()
	for key, value := range other {
		out[key] = value
	}
	return out
}

// Builder assembles Settings from site configuration.
type Builder struct {
	config     interfaces.ConfigReader
	translator interfaces.Translator
}

// NewBuilder returns a builder. A nil translator leaves default strings untranslated.
func NewBuilder(config interfaces.ConfigReader, translator interfaces.Translator) *Builder {
	return &Builder{config: config, translator: translator}
}

// ModeFor reports the mode the configuration selects.
func (b *Builder) ModeFor() Mode {
	if b.config.GetBool(siteconfig.KeyActivate, false) {
		return ModeCustom
	}
	return ModeDefault
}

// Build returns the settings for locale and the mode that produced them.
func (b *Builder) Build(locale string) (Settings, Mode) {
	cfg := b.config
	mobile := Settings{
		"mobiledetect":      cfg.GetBool(siteconfig.KeyMobileDetect, true),
		"mobiledevicewidth": cfg.GetString(siteconfig.KeyMobileDeviceWidth, "480px"),
	}

	if b.ModeFor() == ModeCustom {
		settings := Settings{
			"transition":     cfg.GetString(siteconfig.KeyTransitionType, "elastic"),
			"speed":          cfg.GetInt(siteconfig.KeyTransitionSpeed, 350),
			"opacity":        cfg.GetString(siteconfig.KeyOpacity, "0.85"),
			"slideshow":      cfg.GetBool(siteconfig.KeySlideshow, false),
			"slideshowAuto":  cfg.GetBool(siteconfig.KeySlideshowAuto, true),
			"slideshowSpeed": cfg.GetInt(siteconfig.KeySlideshowSpeed, 2500),
			"slideshowStart": cfg.GetString(siteconfig.KeySlideshowTextStart, "start slideshow"),
			"slideshowStop":  cfg.GetString(siteconfig.KeySlideshowTextStop, "stop slideshow"),
			"current":        cfg.GetString(siteconfig.KeyTextCurrent, "{current} of {total}"),
			"previous":       cfg.GetString(siteconfig.KeyTextPrevious, "« Prev"),
			"next":           cfg.GetString(siteconfig.KeyTextNext, "Next »"),
			"close":          cfg.GetString(siteconfig.KeyTextClose, "Close"),
			"overlayClose":   cfg.GetBool(siteconfig.KeyOverlayClose, true),
			"maxWidth":       cfg.GetString(siteconfig.KeyMaxWidth, "98%"),
			"maxHeight":      cfg.GetString(siteconfig.KeyMaxHeight, "98%"),
			"initialWidth":   cfg.GetString(siteconfig.KeyInitialWidth, "300"),
			"initialHeight":  cfg.GetString(siteconfig.KeyInitialHeight, "250"),
			"fixed":          cfg.GetBool(siteconfig.KeyFixed, true),
			"scrolling":      cfg.GetBool(siteconfig.KeyScrolling, true),
		}
		return settings.Merge(mobile), ModeCustom
	}

	settings := Settings{
		"opacity":   "0.85",
		"current":   b.t(locale, "{current} of {total}"),
		"previous":  b.t(locale, "« Prev"),
		"next":      b.t(locale, "Next »"),
		"close":     b.t(locale, "Close"),
		"maxWidth":  "98%",
		"maxHeight": "98%",
		"fixed":     true,
	}
	return settings.Merge(mobile), ModeDefault
}

func (b *Builder) t(locale, key string) string {
	if b.translator == nil {
		return key
	}
	value, err := b.translator.Translate(locale, key)
	if err != nil || value == "" {
		return key
	}
	return value
}
