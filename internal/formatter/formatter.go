package formatter

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-colorbox/internal/forms"
	"github.com/goliatone/go-colorbox/internal/imagestyles"
	"github.com/goliatone/go-colorbox/internal/logging"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

// Messages shown for invalid custom gallery identifiers.
const (
	MessageGalleryCustomInvalid = "The custom gallery field must only contain lowercase letters, numbers, and underscores."
	MessageGalleryCustomExists  = "The machine-readable name is already in use. It must be unique."
)

// DefaultTokenHelpURL is linked from the custom caption notice unless
// WithTokenHelpURL overrides it.
const DefaultTokenHelpURL = "https://pkg.go.dev/github.com/goliatone/go-colorbox/pkg/interfaces#TokenReplacer"

var machineNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// GalleryExistsFunc reports whether a custom gallery identifier is taken.
type GalleryExistsFunc func(ctx context.Context, id string) bool

// FieldFormatter is the capability set a host calls on an image formatter.
type FieldFormatter interface {
	SettingsForm(current DisplaySettings) forms.Form
	SettingsSummary(current DisplaySettings) []string
	Render(entity Entity, langcode string, field FieldDefinition, items []ImageItem, settings DisplaySettings) map[int]RenderDescriptor
}

// Formatter renders image fields for the lightbox.
type Formatter struct {
	styles     imagestyles.Registry
	translator interfaces.Translator
	locale     string
	exists     GalleryExistsFunc
	logger     interfaces.Logger

	tokenHelpURL string
}

var _ FieldFormatter = (*Formatter)(nil)

// Option customises a Formatter.
type Option func(*Formatter)

func WithTranslator(translator interfaces.Translator) Option {
	return func(f *Formatter) { f.translator = translator }
}

// WithLocale sets the locale used for labels and summaries.
func WithLocale(locale string) Option {
	return func(f *Formatter) { f.locale = locale }
}

// WithGalleryExists sets the uniqueness check for custom gallery identifiers.
func WithGalleryExists(fn GalleryExistsFunc) Option {
	return func(f *Formatter) { f.exists = fn }
}

func WithLogger(logger interfaces.Logger) Option {
	return func(f *Formatter) { f.logger = logging.EnsureLogger(logger) }
}

// WithTokenHelpURL sets the link shown next to the custom caption field.
func WithTokenHelpURL(url string) Option {
	return func(f *Formatter) {
		if url != "" {
			f.tokenHelpURL = url
		}
	}
}

// New constructs a formatter over the live image styles.
func New(styles imagestyles.Registry, opts ...Option) *Formatter {
	if styles == nil {
		styles = imagestyles.NewMemoryRegistry()
	}
	f := &Formatter{styles: styles, logger: logging.NoOp(), tokenHelpURL: DefaultTokenHelpURL}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Localized returns a copy of f producing strings for locale.
func (f *Formatter) Localized(locale string) *Formatter {
	clone := *f
	clone.locale = locale
	return &clone
}

// UsingGalleryExists returns a copy of f with a different uniqueness check.
func (f *Formatter) UsingGalleryExists(fn GalleryExistsFunc) *Formatter {
	clone := *f
	clone.exists = fn
	return &clone
}

// SettingsForm describes the administrative settings form for current.
func (f *Formatter) SettingsForm(current DisplaySettings) forms.Form {
	styleOptions := make([]forms.Option, 0)
	for _, style := range f.styles.Styles() {
		styleOptions = append(styleOptions, forms.Option{Value: style.ID, Label: style.Label})
	}
	hideOptions := append(append([]forms.Option(nil), styleOptions...), forms.Option{
		Value: HideStyle,
		Label: f.t("Hide (do not display image)"),
	})
	original := &forms.Option{Value: "", Label: f.t("None (original image)")}

	galleryOptions := make([]forms.Option, 0, len(galleryModes))
	for _, mode := range galleryModes {
		galleryOptions = append(galleryOptions, forms.Option{Value: string(mode.value), Label: f.t(mode.label)})
	}
	captionOptions := make([]forms.Option, 0, len(captionModes))
	for _, mode := range captionModes {
		captionOptions = append(captionOptions, forms.Option{Value: string(mode.value), Label: f.t(mode.label)})
	}

	var exists forms.ExistsFunc
	if f.exists != nil {
		exists = forms.ExistsFunc(f.exists)
	}

	return forms.Form{Elements: []forms.Element{
		{
			Name:         SettingNodeStyle,
			Type:         forms.TypeSelect,
			Title:        f.t("Content image style"),
			Description:  f.t("Image style to use in the content."),
			DefaultValue: current.NodeStyle,
			EmptyOption:  original,
			Options:      hideOptions,
		},
		{
			Name:         SettingImageStyle,
			Type:         forms.TypeSelect,
			Title:        f.t("Colorbox image style"),
			Description:  f.t("Image style to use in the Colorbox."),
			DefaultValue: current.ImageStyle,
			EmptyOption:  original,
			Options:      styleOptions,
		},
		{
			Name:         SettingGallery,
			Type:         forms.TypeSelect,
			Title:        f.t("Gallery (image grouping)"),
			Description:  f.t("How Colorbox should group the image galleries."),
			DefaultValue: string(current.Gallery),
			Options:      galleryOptions,
		},
		{
			Name:         SettingGalleryCustom,
			Type:         forms.TypeMachineName,
			Title:        f.t("Custom gallery"),
			Description:  f.t("All images on a page with the same gallery value (rel attribute) will be grouped together. It must only contain lowercase letters, numbers, and underscores."),
			DefaultValue: current.GalleryCustom,
			MaxLength:    GalleryCustomMaxLength,
			Pattern:      machineNamePattern.String(),
			States:       forms.VisibleWhen(SettingGallery, string(GalleryCustom)),
			Exists:       exists,
		},
		{
			Name:         SettingCaption,
			Type:         forms.TypeSelect,
			Title:        f.t("Caption"),
			Description:  f.t("Automatic will use the first non-empty value of the title, the alt text and the content title."),
			DefaultValue: string(current.Caption),
			Options:      captionOptions,
		},
		{
			Name:         SettingCaptionCustom,
			Type:         forms.TypeTextField,
			Title:        f.t("Custom caption"),
			DefaultValue: current.CaptionCustom,
			States:       forms.VisibleWhen(SettingCaption, string(CaptionCustom)),
		},
		{
			Name:        "colorbox_token",
			Type:        forms.TypeFieldset,
			Title:       f.t("Replacement patterns"),
			Description: `<strong class="error">` + f.t("For token support the <a href=\"%s\">token module</a> must be installed.", f.tokenHelpURL) + `</strong>`,
			States:      forms.VisibleWhen(SettingCaption, string(CaptionCustom)),
		},
	}}
}

// SettingsSummary lists human-readable lines describing current.
func (f *Formatter) SettingsSummary(current DisplaySettings) []string {
	summary := make([]string, 0, 4)

	if style, ok := f.styles.Lookup(current.NodeStyle); ok {
		summary = append(summary, f.t("Content image style: %s", style.Label))
	} else if current.NodeStyle == HideStyle {
		summary = append(summary, f.t("Content image style: Hide"))
	} else {
		summary = append(summary, f.t("Content image style: Original image"))
	}

	if style, ok := f.styles.Lookup(current.ImageStyle); ok {
		summary = append(summary, f.t("Colorbox image style: %s", style.Label))
	} else {
		summary = append(summary, f.t("Colorbox image style: Original image"))
	}

	if current.Gallery != "" {
		line := f.t("Colorbox gallery type: %s", f.t(current.Gallery.Label()))
		if current.Gallery == GalleryCustom {
			line += " (" + current.GalleryCustom + ")"
		}
		summary = append(summary, line)
	}

	if current.Caption != "" {
		summary = append(summary, f.t("Colorbox caption: %s", f.t(current.Caption.Label())))
	}

	return summary
}

// Render returns one descriptor per included item keyed by its position.
func (f *Formatter) Render(entity Entity, langcode string, field FieldDefinition, items []ImageItem, settings DisplaySettings) map[int]RenderDescriptor {
	out := make(map[int]RenderDescriptor, len(items))
	entityType := ""
	if entity != nil {
		entityType = entity.EntityType()
	}
	for delta, item := range items {
		if !settings.Includes(delta) {
			continue
		}
		out[delta] = RenderDescriptor{
			Theme:           ThemeHook,
			Delta:           delta,
			Item:            item,
			EntityType:      entityType,
			Entity:          entity,
			Node:            entity,
			Field:           field,
			DisplaySettings: settings,
			Langcode:        langcode,
		}
	}
	logging.WithFieldContext(f.logger, entityType, field.Name).Debug("colorbox.formatter.render",
		"items", len(items),
		"rendered", len(out),
	)
	return out
}

// ValidateSettings checks submitted settings. Failures are validation.Errors
// keyed by setting name.
func (f *Formatter) ValidateSettings(ctx context.Context, settings DisplaySettings) error {
	errs := validation.Errors{}

	if settings.NodeStyle != "" && settings.NodeStyle != HideStyle {
		if _, ok := f.styles.Lookup(settings.NodeStyle); !ok {
			errs[SettingNodeStyle] = validation.NewError("colorbox.formatter.node_style_invalid", "content image style must be an existing image style")
		}
	}
	if settings.ImageStyle != "" {
		if _, ok := f.styles.Lookup(settings.ImageStyle); !ok {
			errs[SettingImageStyle] = validation.NewError("colorbox.formatter.image_style_invalid", "colorbox image style must be an existing image style")
		}
	}
	if settings.Gallery != "" && !settings.Gallery.Valid() {
		errs[SettingGallery] = validation.NewError("colorbox.formatter.gallery_invalid", "gallery must be one of the supported modes")
	}
	if settings.Caption != "" && !settings.Caption.Valid() {
		errs[SettingCaption] = validation.NewError("colorbox.formatter.caption_invalid", "caption must be one of the supported modes")
	}
	if err := f.validateGalleryCustom(ctx, settings); err != nil {
		errs[SettingGalleryCustom] = err
	}
	if settings.MultivalueIndex != nil && *settings.MultivalueIndex < 0 {
		errs[SettingMultivalueIndex] = validation.NewError("colorbox.formatter.multivalue_index_invalid", "multivalue index must be zero or positive")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f *Formatter) validateGalleryCustom(ctx context.Context, settings DisplaySettings) error {
	custom := settings.GalleryCustom
	if custom == "" {
		if settings.Gallery == GalleryCustom {
			return validation.NewError("colorbox.formatter.gallery_custom_required", f.t("Custom gallery field is required."))
		}
		return nil
	}
	if err := ValidateGalleryID(custom); err != nil {
		return validation.NewError("colorbox.formatter.gallery_custom_invalid", f.t(MessageGalleryCustomInvalid))
	}
	if settings.Gallery == GalleryCustom && f.exists != nil && f.exists(ctx, custom) {
		return validation.NewError("colorbox.formatter.gallery_custom_exists", f.t(MessageGalleryCustomExists))
	}
	return nil
}

// ValidateGalleryID checks the format of a custom gallery identifier.
func ValidateGalleryID(id string) error {
	invalid := validation.NewError("colorbox.formatter.gallery_custom_invalid", MessageGalleryCustomInvalid)
	return validation.Validate(id,
		validation.Required.ErrorObject(invalid),
		validation.Length(1, GalleryCustomMaxLength).ErrorObject(invalid),
		validation.Match(machineNamePattern).ErrorObject(invalid),
	)
}

func (f *Formatter) t(key string, args ...any) string {
	if f.translator != nil {
		if value, err := f.translator.Translate(f.locale, key, args...); err == nil && value != "" {
			return value
		}
	}
	if len(args) == 0 {
		return key
	}
	return fmt.Sprintf(key, args...)
}
