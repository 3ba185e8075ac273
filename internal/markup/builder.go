package markup

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-slug"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-colorbox/internal/formatter"
	"github.com/goliatone/go-colorbox/internal/imagestyles"
	"github.com/goliatone/go-colorbox/internal/logging"
	"github.com/goliatone/go-colorbox/internal/siteconfig"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

// ExampleStyleMarker forces caption trimming for the demo skins.
const ExampleStyleMarker = "colorbox/example"

const (
	captionEllipsis   = "..."
	captionTrimMargin = 5
)

// DefaultFilesPath is where public files are served from.
const DefaultFilesPath = "sites/default/files"

var safeIDFragment = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Image is the content image inside a lightbox link.
type Image struct {
	Src    string
	Alt    string
	Title  string
	Width  int
	Height int
}

// Link is a lightbox anchor. Image is nil when the content image is hidden.
type Link struct {
	Href    string
	Caption string
	Gallery string
	Classes []string
	Image   *Image
}

// Class joins the link classes.
func (l Link) Class() string {
	return strings.Join(l.Classes, " ")
}

// Builder turns render descriptors into lightbox markup.
type Builder struct {
	config    interfaces.ConfigReader
	tokens    interfaces.TokenReplacer
	policy    *bluemonday.Policy
	baseURL   string
	filesPath string
	logger    interfaces.Logger
}

// Option customises a Builder.
type Option func(*Builder)

// WithTokenReplacer sets the collaborator expanding custom caption tokens.
func WithTokenReplacer(tokens interfaces.TokenReplacer) Option {
	return func(b *Builder) { b.tokens = tokens }
}

// WithFilesPath sets the public files directory.
func WithFilesPath(p string) Option {
	return func(b *Builder) {
		if p = strings.Trim(p, "/"); p != "" {
			b.filesPath = p
		}
	}
}

// WithBaseURL prefixes relative image URLs.
func WithBaseURL(base string) Option {
	return func(b *Builder) { b.baseURL = strings.TrimRight(base, "/") }
}

func WithLogger(logger interfaces.Logger) Option {
	return func(b *Builder) { b.logger = logging.EnsureLogger(logger) }
}

// NewBuilder constructs a builder reading caption and style settings from config.
func NewBuilder(config interfaces.ConfigReader, opts ...Option) *Builder {
	b := &Builder{
		config:    config,
		policy:    bluemonday.StripTagsPolicy(),
		filesPath: DefaultFilesPath,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Build resolves the link for one descriptor.
func (b *Builder) Build(ctx context.Context, desc formatter.RenderDescriptor) Link {
	settings := desc.DisplaySettings
	item := desc.Item

	link := Link{
		Href:    b.url(imagestyles.URL(settings.ImageStyle, item.URI)),
		Caption: b.caption(ctx, desc),
		Gallery: GalleryID(desc),
		Classes: []string{"colorbox"},
	}

	if settings.HidesContentImage() {
		link.Classes = append(link.Classes, "js-hide")
		return link
	}

	img := &Image{
		Src:   b.url(imagestyles.URL(settings.NodeStyle, item.URI)),
		Alt:   item.Alt,
		Title: item.Title,
	}
	if settings.NodeStyle == "" {
		img.Width = item.Width
		img.Height = item.Height
	}
	link.Image = img
	return link
}

var linkTemplate = template.Must(template.New("colorbox").Parse(
	`<a href="{{.Href}}" class="{{.Class}}"{{if .Caption}} title="{{.Caption}}"{{end}}{{if .Gallery}} rel="{{.Gallery}}" data-colorbox-gallery="{{.Gallery}}"{{end}}>` +
		`{{with .Image}}<img src="{{.Src}}" alt="{{.Alt}}"{{if .Title}} title="{{.Title}}"{{end}}{{if .Width}} width="{{.Width}}"{{end}}{{if .Height}} height="{{.Height}}"{{end}}>{{end}}</a>`))

// RenderLink renders one descriptor.
func (b *Builder) RenderLink(ctx context.Context, desc formatter.RenderDescriptor) (template.HTML, error) {
	var buf bytes.Buffer
	if err := linkTemplate.Execute(&buf, b.Build(ctx, desc)); err != nil {
		return "", fmt.Errorf("markup: render link: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Render renders descriptors in item order, one link per line.
func (b *Builder) Render(ctx context.Context, descs map[int]formatter.RenderDescriptor) (template.HTML, error) {
	deltas := make([]int, 0, len(descs))
	for delta := range descs {
		deltas = append(deltas, delta)
	}
	sort.Ints(deltas)

	parts := make([]string, 0, len(deltas))
	for _, delta := range deltas {
		out, err := b.RenderLink(ctx, descs[delta])
		if err != nil {
			b.logger.Error("colorbox.markup.render_failed", "delta", delta, "error", err)
			return "", err
		}
		parts = append(parts, string(out))
	}
	return template.HTML(strings.Join(parts, "\n")), nil
}

// GalleryID groups images according to the gallery mode.
func GalleryID(desc formatter.RenderDescriptor) string {
	settings := desc.DisplaySettings
	entityID := "entity-id"
	if desc.Entity != nil && desc.Entity.EntityID() != "" {
		entityID = idFragment(desc.EntityType) + "-" + idFragment(desc.Entity.EntityID())
	}

	switch settings.Gallery {
	case formatter.GalleryPost:
		return "gallery-" + entityID
	case formatter.GalleryPage:
		return "gallery-all"
	case formatter.GalleryFieldPost:
		return "gallery-" + entityID + "-" + desc.Field.Name
	case formatter.GalleryFieldPage:
		return "gallery-" + desc.Field.Name
	case formatter.GalleryCustom:
		return settings.GalleryCustom
	default:
		return ""
	}
}

func idFragment(value string) string {
	if safeIDFragment.MatchString(value) {
		return value
	}
	normalized, err := slug.Normalize(value)
	if err != nil || normalized == "" {
		return value
	}
	return normalized
}

func (b *Builder) caption(ctx context.Context, desc formatter.RenderDescriptor) string {
	item := desc.Item
	label := ""
	if desc.Entity != nil {
		label = desc.Entity.Label()
	}

	var caption string
	switch desc.DisplaySettings.Caption {
	case formatter.CaptionAuto:
		caption = firstNonEmpty(item.Title, item.Alt, label)
	case formatter.CaptionTitle:
		caption = item.Title
	case formatter.CaptionAlt:
		caption = item.Alt
	case formatter.CaptionNodeTitle:
		caption = label
	case formatter.CaptionCustom:
		if b.tokens != nil {
			caption = b.tokens.Replace(ctx, desc.DisplaySettings.CaptionCustom, TokenData(desc))
		} else {
			caption = desc.DisplaySettings.CaptionCustom
		}
	}

	caption = strings.TrimSpace(html.UnescapeString(b.policy.Sanitize(caption)))
	return b.trim(caption)
}

func (b *Builder) trim(caption string) string {
	limit := b.config.GetInt(siteconfig.KeyCaptionTrimLength, 75)
	style := b.config.GetString(siteconfig.KeyStyle, "default")
	enabled := b.config.GetBool(siteconfig.KeyCaptionTrim, false) || strings.Contains(style, ExampleStyleMarker)
	if !enabled || utf8.RuneCountInString(caption) <= limit {
		return caption
	}
	keep := limit - captionTrimMargin
	if keep < 0 {
		keep = 0
	}
	runes := []rune(caption)
	return string(runes[:keep]) + captionEllipsis
}

// url maps stream wrapper URIs and style derivatives to public URLs.
func (b *Builder) url(path string) string {
	switch {
	case path == "":
		return ""
	case strings.HasPrefix(path, "public://"):
		path = b.filesPath + "/" + strings.TrimPrefix(path, "public://")
	case strings.HasPrefix(path, "private://"):
		path = "system/files/" + strings.TrimPrefix(path, "private://")
	case strings.HasPrefix(path, "styles/"):
		path = b.filesPath + "/" + path
	case strings.Contains(path, "://"), strings.HasPrefix(path, "/"):
		return path
	}
	if b.baseURL == "" {
		return "/" + path
	}
	return b.baseURL + "/" + path
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
