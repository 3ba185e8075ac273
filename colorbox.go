package colorbox

import (
	"context"
	"html/template"
	"net/http"

	"github.com/goliatone/go-colorbox/internal/assets"
	displayscmd "github.com/goliatone/go-colorbox/internal/commands/displays"
	"github.com/goliatone/go-colorbox/internal/di"
	"github.com/goliatone/go-colorbox/internal/displays"
	"github.com/goliatone/go-colorbox/internal/formatter"
	"github.com/goliatone/go-colorbox/internal/forms"
	"github.com/goliatone/go-colorbox/internal/lightbox"
	"github.com/goliatone/go-colorbox/internal/loader"
	"github.com/goliatone/go-colorbox/internal/pathmatch"
)

// Request is the per-request loader state.
type Request = loader.Request

// AssetSnapshot lists the directives collected for one page.
type AssetSnapshot = assets.Snapshot

// DisplaySettings are the formatter settings of one field display.
type DisplaySettings = formatter.DisplaySettings

// DisplayKey addresses one field display.
type DisplayKey = displays.Key

// Display is a stored field display.
type Display = displays.Display

// Entity is the host object an image field belongs to.
type Entity = formatter.Entity

// BasicEntity is a ready-made Entity.
type BasicEntity = formatter.BasicEntity

// FieldDefinition describes the rendered image field.
type FieldDefinition = formatter.FieldDefinition

// ImageItem is one value of an image field.
type ImageItem = formatter.ImageItem

// RenderDescriptor is the per-item render request produced by the formatter.
type RenderDescriptor = formatter.RenderDescriptor

// Form is the formatter settings form.
type Form = forms.Form

// SaveDisplayCommand stores display settings.
type SaveDisplayCommand = displayscmd.SaveDisplayCommand

// DeleteDisplayCommand removes stored display settings.
type DeleteDisplayCommand = displayscmd.DeleteDisplayCommand

// SettingsAlterer adjusts lightbox settings and the style before attachment.
type SettingsAlterer = lightbox.Alterer

// ActiveAlterer may override the page visibility decision.
type ActiveAlterer = pathmatch.ActiveAlterer

// MiddlewareOption configures the request middleware.
type MiddlewareOption = loader.MiddlewareOption

// Module is the top level colorbox runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using cfg and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Close releases storage opened by the module.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}

// Attach runs the asset loader for req. It reports whether assets were
// attached by this call.
func (m *Module) Attach(ctx context.Context, req *Request) bool {
	return m.container.Loader().MaybeAttach(ctx, req)
}

// Middleware attaches assets for every request passing through it. Handlers
// read the collected assets with AssetsFromContext.
func (m *Module) Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if m.container.Translator() != nil {
		opts = append([]MiddlewareOption{loader.WithLocaleMatcher(m.container.Translator())}, opts...)
	}
	return loader.Middleware(m.container.Loader(), opts...)
}

// WithAliasResolver maps request paths to aliases for visibility checks.
func WithAliasResolver(resolver loader.AliasResolver) MiddlewareOption {
	return loader.WithAliasResolver(resolver)
}

// WithFrontPath marks the given path as the front page.
func WithFrontPath(p string) MiddlewareOption {
	return loader.WithFrontPath(p)
}

// AssetsFromContext returns the assets collected for the current request.
func AssetsFromContext(ctx context.Context) (AssetSnapshot, bool) {
	collector, ok := assets.FromContext(ctx)
	if !ok {
		return AssetSnapshot{}, false
	}
	return collector.Snapshot(), true
}

// RenderHead renders the stylesheet and script tags for snapshot.
func (m *Module) RenderHead(snapshot AssetSnapshot, basePath string) (template.HTML, error) {
	cfg := m.container.Config.Module
	resolver := assets.LibraryResolver{Paths: map[string]string{cfg.LibraryName: cfg.LibraryPath}}
	return assets.RenderHead(snapshot, resolver, basePath)
}

// SettingsForm returns the formatter settings form for a display, localized
// to locale. The gallery uniqueness check ignores the display's own claim.
func (m *Module) SettingsForm(ctx context.Context, key DisplayKey, locale string) Form {
	svc := m.container.DisplayService()
	settings := svc.Resolve(ctx, key)
	return m.container.Formatter().
		Localized(locale).
		UsingGalleryExists(func(ctx context.Context, id string) bool {
			return svc.GalleryExists(ctx, id, key)
		}).
		SettingsForm(settings)
}

// SettingsSummary returns the summary lines of a display.
func (m *Module) SettingsSummary(ctx context.Context, key DisplayKey, locale string) []string {
	settings := m.container.DisplayService().Resolve(ctx, key)
	return m.container.Formatter().Localized(locale).SettingsSummary(settings)
}

// SaveDisplay validates and stores display settings.
func (m *Module) SaveDisplay(ctx context.Context, cmd SaveDisplayCommand) error {
	return m.container.SaveDisplayHandler().Execute(ctx, cmd)
}

// DeleteDisplay removes display settings.
func (m *Module) DeleteDisplay(ctx context.Context, cmd DeleteDisplayCommand) error {
	return m.container.DeleteDisplayHandler().Execute(ctx, cmd)
}

// Display returns the stored settings for key.
func (m *Module) Display(ctx context.Context, key DisplayKey) (*Display, error) {
	return m.container.DisplayService().Get(ctx, key)
}

// Render produces the per-item descriptors for an image field using the
// stored settings of its display.
func (m *Module) Render(ctx context.Context, entity Entity, langcode string, field FieldDefinition, viewMode string, items []ImageItem) map[int]RenderDescriptor {
	entityType := ""
	if entity != nil {
		entityType = entity.EntityType()
	}
	key := DisplayKey{
		EntityType: entityType,
		Bundle:     field.Bundle,
		Field:      field.Name,
		ViewMode:   viewMode,
	}
	settings := m.container.DisplayService().Resolve(ctx, key)
	return m.container.Formatter().Render(entity, langcode, field, items, settings)
}

// RenderHTML renders the lightbox links of an image field.
func (m *Module) RenderHTML(ctx context.Context, entity Entity, langcode string, field FieldDefinition, viewMode string, items []ImageItem) (template.HTML, error) {
	return m.container.Markup().Render(ctx, m.Render(ctx, entity, langcode, field, viewMode, items))
}

// RequestFromContext returns the loader request stored by Middleware.
func RequestFromContext(ctx context.Context) (*Request, bool) {
	return loader.RequestFromContext(ctx)
}
