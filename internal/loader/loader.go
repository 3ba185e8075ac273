package loader

import (
	"context"
	"path"

	"github.com/goliatone/go-colorbox/internal/lightbox"
	"github.com/goliatone/go-colorbox/internal/logging"
	"github.com/goliatone/go-colorbox/internal/pathmatch"
	"github.com/goliatone/go-colorbox/internal/siteconfig"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

// Bundled skins ship a script and stylesheet under styles/{name}/.
var bundledStyles = map[string]struct{}{
	"default":           {},
	"plain":             {},
	"stockholmsyndrome": {},
}

// StyleNone disables style assets.
const StyleNone = "none"

// ActivePredicate decides whether the lightbox runs on a page.
type ActivePredicate interface {
	Active(ctx context.Context, in pathmatch.Input) bool
}

// PredicateFunc adapts a function to ActivePredicate.
type PredicateFunc func(ctx context.Context, in pathmatch.Input) bool

func (fn PredicateFunc) Active(ctx context.Context, in pathmatch.Input) bool {
	return fn(ctx, in)
}

// Request carries the per-request state the loader reads and marks. A Request
// must not be shared between requests.
type Request struct {
	Path   string
	Alias  string
	Front  bool
	Locale string
	Assets interfaces.AssetPipeline

	attached bool
}

// Attached reports whether assets were attached for this request.
func (r *Request) Attached() bool {
	return r != nil && r.attached
}

func (r *Request) pathInput() pathmatch.Input {
	return pathmatch.Input{Path: r.Path, Alias: r.Alias, Front: r.Front}
}

// Loader attaches the lightbox assets and page settings.
type Loader struct {
	config      interfaces.ConfigReader
	builder     *lightbox.Builder
	translator  interfaces.Translator
	alterers    lightbox.Chain
	active      ActivePredicate
	installing  func() bool
	disabled    bool
	modulePath  string
	libraryName string
	logger      interfaces.Logger
}

// Option customises a Loader.
type Option func(*Loader)

// WithAlterers appends settings alterers, applied in order.
func WithAlterers(alterers ...lightbox.Alterer) Option {
	return func(l *Loader) {
		l.alterers = append(l.alterers, alterers...)
	}
}

// WithActivePredicate sets the page activation predicate. Without one every
// page is active.
func WithActivePredicate(predicate ActivePredicate) Option {
	return func(l *Loader) {
		l.active = predicate
	}
}

// WithInstallCheck sets the predicate reporting that the host is installing.
func WithInstallCheck(fn func() bool) Option {
	return func(l *Loader) {
		l.installing = fn
	}
}

// WithEnabled switches asset attachment on or off.
func WithEnabled(enabled bool) Option {
	return func(l *Loader) {
		l.disabled = !enabled
	}
}

// WithModulePath sets the base path of the module's bundled assets.
func WithModulePath(p string) Option {
	return func(l *Loader) {
		if p != "" {
			l.modulePath = p
		}
	}
}

// WithLibraryName sets the third-party library name.
func WithLibraryName(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.libraryName = name
		}
	}
}

func WithTranslator(translator interfaces.Translator) Option {
	return func(l *Loader) {
		l.translator = translator
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(l *Loader) {
		l.logger = logging.EnsureLogger(logger)
	}
}

// New constructs a loader reading site configuration from config.
func New(config interfaces.ConfigReader, opts ...Option) *Loader {
	l := &Loader{
		config:      config,
		modulePath:  "modules/colorbox",
		libraryName: "colorbox",
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	l.builder = lightbox.NewBuilder(config, l.translator)
	return l
}

// MaybeAttach attaches assets at most once per request and only when the page
// is active. It reports whether this call attached them.
func (l *Loader) MaybeAttach(ctx context.Context, req *Request) bool {
	if req == nil || req.Assets == nil || l.disabled {
		return false
	}
	if l.installing != nil && l.installing() {
		return false
	}
	if req.attached {
		return false
	}
	if l.active != nil && !l.active.Active(ctx, req.pathInput()) {
		return false
	}

	settings, mode := l.builder.Build(req.Locale)
	style := l.config.GetString(siteconfig.KeyStyle, "default")
	settings, style = l.alterers.Alter(ctx, settings, style)

	pipeline := req.Assets
	pipeline.AddSetting(lightbox.SettingsKey, settings)

	variant := l.config.GetString(siteconfig.KeyCompressionType, "minified")
	pipeline.AddLibrary(l.libraryName, variant)
	pipeline.AddScript(path.Join(l.modulePath, "js", "colorbox.js"))

	l.attachStyle(pipeline, style)

	if l.config.GetBool(siteconfig.KeyExtraLoad, false) {
		pipeline.AddScript(path.Join(l.modulePath, "js", "colorbox_load.js"))
	}
	if l.config.GetBool(siteconfig.KeyExtraInline, false) {
		pipeline.AddScript(path.Join(l.modulePath, "js", "colorbox_inline.js"))
	}

	req.attached = true
	logging.WithRequestContext(l.logger, req.Path, req.Locale).Debug("colorbox.assets.attached",
		"style", style,
		"mode", string(mode),
		"variant", variant,
	)
	return true
}

func (l *Loader) attachStyle(pipeline interfaces.AssetPipeline, style string) {
	if style == StyleNone {
		return
	}
	if _, ok := bundledStyles[style]; ok {
		dir := path.Join(l.modulePath, "styles", style)
		pipeline.AddStylesheet(path.Join(dir, "colorbox_style.css"))
		pipeline.AddScript(path.Join(dir, "colorbox_style.js"))
		return
	}
	pipeline.AddStylesheet(style + "/colorbox.css")
}
