package formatter

import (
	"strconv"
	"strings"
)

// Setting names as stored in a display configuration.
const (
	SettingNodeStyle       = "colorbox_node_style"
	SettingImageStyle      = "colorbox_image_style"
	SettingGallery         = "colorbox_gallery"
	SettingGalleryCustom   = "colorbox_gallery_custom"
	SettingCaption         = "colorbox_caption"
	SettingCaptionCustom   = "colorbox_caption_custom"
	SettingMultivalueIndex = "colorbox_multivalue_index"
)

// HideStyle hides the content image and keeps only the lightbox link.
const HideStyle = "hide"

// GalleryCustomMaxLength bounds custom gallery identifiers.
const GalleryCustomMaxLength = 32

type GalleryMode string

const (
	GalleryPost      GalleryMode = "post"
	GalleryPage      GalleryMode = "page"
	GalleryFieldPost GalleryMode = "field_post"
	GalleryFieldPage GalleryMode = "field_page"
	GalleryCustom    GalleryMode = "custom"
	GalleryNone      GalleryMode = "none"
)

type CaptionMode string

const (
	CaptionAuto      CaptionMode = "auto"
	CaptionTitle     CaptionMode = "title"
	CaptionAlt       CaptionMode = "alt"
	CaptionNodeTitle CaptionMode = "node_title"
	CaptionCustom    CaptionMode = "custom"
	CaptionNone      CaptionMode = "none"
)

type labeled[T ~string] struct {
	value T
	label string
}

var galleryModes = []labeled[GalleryMode]{
	{GalleryPost, "Per post gallery"},
	{GalleryPage, "Per page gallery"},
	{GalleryFieldPost, "Per field in post gallery"},
	{GalleryFieldPage, "Per field in page gallery"},
	{GalleryCustom, "Custom"},
	{GalleryNone, "No gallery"},
}

var captionModes = []labeled[CaptionMode]{
	{CaptionAuto, "Automatic"},
	{CaptionTitle, "Title text"},
	{CaptionAlt, "Alt text"},
	{CaptionNodeTitle, "Content title"},
	{CaptionCustom, "Custom (with tokens)"},
	{CaptionNone, "None"},
}

// GalleryModes lists gallery modes in form order.
func GalleryModes() []GalleryMode {
	out := make([]GalleryMode, 0, len(galleryModes))
	for _, mode := range galleryModes {
		out = append(out, mode.value)
	}
	return out
}

// CaptionModes lists caption modes in form order.
func CaptionModes() []CaptionMode {
	out := make([]CaptionMode, 0, len(captionModes))
	for _, mode := range captionModes {
		out = append(out, mode.value)
	}
	return out
}

// Label returns the untranslated label, or "" for unknown modes.
func (m GalleryMode) Label() string {
	return labelOf(galleryModes, m)
}

func (m GalleryMode) Valid() bool {
	return m.Label() != ""
}

// Label returns the untranslated label, or "" for unknown modes.
func (m CaptionMode) Label() string {
	return labelOf(captionModes, m)
}

func (m CaptionMode) Valid() bool {
	return m.Label() != ""
}

func labelOf[T ~string](list []labeled[T], value T) string {
	for _, entry := range list {
		if entry.value == value {
			return entry.label
		}
	}
	return ""
}

// DisplaySettings are the per field instance formatter options.
type DisplaySettings struct {
	NodeStyle       string      `json:"colorbox_node_style"`
	ImageStyle      string      `json:"colorbox_image_style"`
	Gallery         GalleryMode `json:"colorbox_gallery"`
	GalleryCustom   string      `json:"colorbox_gallery_custom"`
	Caption         CaptionMode `json:"colorbox_caption"`
	CaptionCustom   string      `json:"colorbox_caption_custom"`
	MultivalueIndex *int        `json:"colorbox_multivalue_index"`
}

// DefaultSettings returns the settings of a newly configured display.
func DefaultSettings() DisplaySettings {
	return DisplaySettings{
		Gallery: GalleryPost,
		Caption: CaptionAuto,
	}
}

// Includes reports whether the item at delta is rendered.
func (s DisplaySettings) Includes(delta int) bool {
	return s.MultivalueIndex == nil || *s.MultivalueIndex == delta
}

// HidesContentImage reports whether the content image is hidden.
func (s DisplaySettings) HidesContentImage() bool {
	return s.NodeStyle == HideStyle
}

// WithMultivalueIndex returns a copy rendering only the item at index.
func (s DisplaySettings) WithMultivalueIndex(index int) DisplaySettings {
	s.MultivalueIndex = &index
	return s
}

// ToMap returns the settings bag keyed by setting name.
func (s DisplaySettings) ToMap() map[string]any {
	out := map[string]any{
		SettingNodeStyle:       s.NodeStyle,
		SettingImageStyle:      s.ImageStyle,
		SettingGallery:         string(s.Gallery),
		SettingGalleryCustom:   s.GalleryCustom,
		SettingCaption:         string(s.Caption),
		SettingCaptionCustom:   s.CaptionCustom,
		SettingMultivalueIndex: nil,
	}
	if s.MultivalueIndex != nil {
		out[SettingMultivalueIndex] = *s.MultivalueIndex
	}
	return out
}

// SettingsFromMap reads a settings bag over the defaults. Unknown keys are
// ignored; an empty or non-numeric index means "all items".
func SettingsFromMap(values map[string]any) DisplaySettings {
	s := DefaultSettings()
	if values == nil {
		return s
	}
	if v, ok := values[SettingNodeStyle]; ok {
		s.NodeStyle = stringValue(v)
	}
	if v, ok := values[SettingImageStyle]; ok {
		s.ImageStyle = stringValue(v)
	}
	if v, ok := values[SettingGallery]; ok {
		s.Gallery = GalleryMode(stringValue(v))
	}
	if v, ok := values[SettingGalleryCustom]; ok {
		s.GalleryCustom = stringValue(v)
	}
	if v, ok := values[SettingCaption]; ok {
		s.Caption = CaptionMode(stringValue(v))
	}
	if v, ok := values[SettingCaptionCustom]; ok {
		s.CaptionCustom = stringValue(v)
	}
	if v, ok := values[SettingMultivalueIndex]; ok {
		s.MultivalueIndex = indexValue(v)
	}
	return s
}

func stringValue(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(typed)
	default:
		return ""
	}
}

func indexValue(v any) *int {
	var index int
	switch typed := v.(type) {
	case int:
		index = typed
	case int64:
		index = int(typed)
	case float64:
		index = int(typed)
	case *int:
		if typed == nil {
			return nil
		}
		index = *typed
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return nil
		}
		index = parsed
	default:
		return nil
	}
	return &index
}
