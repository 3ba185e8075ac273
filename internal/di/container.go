package di

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-colorbox/internal/commands"
	displayscmd "github.com/goliatone/go-colorbox/internal/commands/displays"
	"github.com/goliatone/go-colorbox/internal/displays"
	"github.com/goliatone/go-colorbox/internal/formatter"
	"github.com/goliatone/go-colorbox/internal/i18n"
	"github.com/goliatone/go-colorbox/internal/imagestyles"
	"github.com/goliatone/go-colorbox/internal/lightbox"
	"github.com/goliatone/go-colorbox/internal/loader"
	"github.com/goliatone/go-colorbox/internal/logging"
	"github.com/goliatone/go-colorbox/internal/logging/console"
	"github.com/goliatone/go-colorbox/internal/logging/gologger"
	"github.com/goliatone/go-colorbox/internal/markup"
	"github.com/goliatone/go-colorbox/internal/pathmatch"
	"github.com/goliatone/go-colorbox/internal/runtimeconfig"
	"github.com/goliatone/go-colorbox/internal/siteconfig"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Container wires the loader, the field formatter and their collaborators.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	settings   *siteconfig.Store
	translator *i18n.Translator
	styles     imagestyles.Registry
	tokens     interfaces.TokenReplacer

	bunDB         *bun.DB
	ownsDB        bool
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	displayRepo displays.Repository
	displaySvc  displays.Service

	alterers       []lightbox.Alterer
	activeAlterers []pathmatch.ActiveAlterer
	installCheck   func() bool

	formatter *formatter.Formatter
	matcher   *pathmatch.Matcher
	loader    *loader.Loader
	markup    *markup.Builder

	saveDisplay   *displayscmd.SaveDisplayHandler
	deleteDisplay *displayscmd.DeleteDisplayHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithSiteConfig supplies an already loaded settings store.
func WithSiteConfig(store *siteconfig.Store) Option {
	return func(c *Container) {
		c.settings = store
	}
}

func WithTranslator(translator *i18n.Translator) Option {
	return func(c *Container) {
		c.translator = translator
	}
}

// WithImageStyles replaces the default thumbnail/medium/large registry.
func WithImageStyles(styles imagestyles.Registry) Option {
	return func(c *Container) {
		c.styles = styles
	}
}

func WithTokenReplacer(tokens interfaces.TokenReplacer) Option {
	return func(c *Container) {
		c.tokens = tokens
	}
}

// WithBunDB uses db for display persistence instead of opening Storage.DSN.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache service.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithDisplayRepository bypasses storage configuration entirely.
func WithDisplayRepository(repo displays.Repository) Option {
	return func(c *Container) {
		c.displayRepo = repo
	}
}

// WithSettingsAlterers appends alterers to the lightbox settings chain.
func WithSettingsAlterers(alterers ...lightbox.Alterer) Option {
	return func(c *Container) {
		c.alterers = append(c.alterers, alterers...)
	}
}

// WithActiveAlterers appends hooks that may override the page visibility decision.
func WithActiveAlterers(alterers ...pathmatch.ActiveAlterer) Option {
	return func(c *Container) {
		c.activeAlterers = append(c.activeAlterers, alterers...)
	}
}

// WithInstallCheck suppresses asset attachment while fn reports true.
func WithInstallCheck(fn func() bool) Option {
	return func(c *Container) {
		c.installCheck = fn
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	steps := []func() error{
		c.configureLoggerProvider,
		c.configureSettings,
		c.configureTranslator,
		c.configureStorage,
		c.configureServices,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			c.Close()
			return nil, err
		}
	}

	c.logger("colorbox.di").Info("colorbox.container.ready",
		"storage", c.storageDriver(),
		"cache", c.cacheService != nil,
		"locales", strings.Join(c.translator.Locales(), ","),
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	logCfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(logCfg.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureSettings() error {
	if c.settings != nil {
		return nil
	}

	opts := []siteconfig.Option{
		siteconfig.WithSchemaValidation(c.Config.Settings.Validate),
	}
	if prefix := strings.TrimSpace(c.Config.Settings.EnvPrefix); prefix != "" {
		opts = append(opts, siteconfig.WithEnvPrefix(prefix))
	}

	if file := strings.TrimSpace(c.Config.Settings.File); file != "" {
		store, err := siteconfig.Load(file, opts...)
		if err != nil {
			return err
		}
		c.settings = store
		return nil
	}

	c.settings = siteconfig.New(opts...)
	return nil
}

func (c *Container) configureTranslator() error {
	if c.translator != nil {
		return nil
	}

	fx, err := i18n.DefaultCatalog()
	if err != nil {
		return err
	}
	if file := strings.TrimSpace(c.Config.Settings.TranslationsFile); file != "" {
		extra, err := i18n.NewLoader(file).Load(context.Background())
		if err != nil {
			return err
		}
		fx.Merge(extra)
	}

	moduleCfg := i18n.FromModuleConfig(c.Config.DefaultLocale, c.Config.Locales)
	fx.Config.DefaultLocale = moduleCfg.DefaultLocale
	fx.Config.Locales = append(moduleCfg.Locales, fx.Config.Locales...)

	c.translator = i18n.NewTranslator(fx)
	return nil
}

func (c *Container) configureStorage() error {
	if c.displayRepo != nil {
		return nil
	}
	if !c.Config.Features.Persistence || c.storageDriver() == "memory" {
		c.displayRepo = displays.NewMemoryRepository()
		return nil
	}

	if c.bunDB == nil {
		sqlDB, err := sql.Open("sqlite3", c.Config.Storage.DSN)
		if err != nil {
			return fmt.Errorf("di: open display storage: %w", err)
		}
		c.bunDB = bun.NewDB(sqlDB, sqlitedialect.New())
		c.bunDB.SetMaxOpenConns(1)
		c.ownsDB = true
	}
	if err := displays.EnsureSchema(context.Background(), c.bunDB); err != nil {
		return err
	}

	c.configureCacheDefaults()
	c.displayRepo = displays.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if ttl := c.Config.Cache.DefaultTTL; ttl > 0 {
			cfg.TTL = ttl
		} else {
			cfg.TTL = time.Minute
		}
		service, err := repocache.NewCacheService(cfg)
		if err != nil {
			c.logger("colorbox.di").Warn("colorbox.container.cache_disabled", "error", err)
			return
		}
		c.cacheService = service
	}

	if c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureServices() error {
	if c.styles == nil {
		c.styles = imagestyles.NewMemoryRegistry(imagestyles.Defaults()...)
	}
	if c.tokens == nil {
		c.tokens = markup.BasicTokens{}
	}

	base := formatter.New(c.styles,
		formatter.WithTranslator(c.translator),
		formatter.WithLocale(c.translator.DefaultLocale()),
		formatter.WithLogger(logging.FormatterLogger(c.loggerProvider)),
	)

	displaysLogger := logging.DisplaysLogger(c.loggerProvider)
	c.displaySvc = displays.NewService(c.displayRepo, base, displays.WithLogger(displaysLogger))
	c.formatter = base.UsingGalleryExists(func(ctx context.Context, id string) bool {
		return c.displaySvc.GalleryExists(ctx, id, displays.Key{})
	})

	loaderOpts := []loader.Option{
		loader.WithEnabled(c.Config.Enabled),
		loader.WithAlterers(c.alterers...),
		loader.WithModulePath(c.Config.Module.BasePath),
		loader.WithLibraryName(c.Config.Module.LibraryName),
		loader.WithTranslator(c.translator),
		loader.WithLogger(logging.LoaderLogger(c.loggerProvider)),
	}
	if c.installCheck != nil {
		loaderOpts = append(loaderOpts, loader.WithInstallCheck(c.installCheck))
	}
	if c.Config.Features.PathVisibility {
		matcher, err := pathmatch.FromConfig(c.settings, pathmatch.WithAlterers(c.activeAlterers...))
		if err != nil {
			return err
		}
		c.matcher = matcher
		loaderOpts = append(loaderOpts, loader.WithActivePredicate(matcher))
	}
	c.loader = loader.New(c.settings, loaderOpts...)

	c.markup = markup.NewBuilder(c.settings,
		markup.WithTokenReplacer(c.tokens),
		markup.WithLogger(logging.MarkupLogger(c.loggerProvider)),
	)

	commandsLogger := commands.Logger(c.loggerProvider, "displays")
	c.saveDisplay = displayscmd.NewSaveDisplayHandler(c.displaySvc, commandsLogger,
		commands.WithTelemetry(commands.LogTelemetry[displayscmd.SaveDisplayCommand](commandsLogger)),
	)
	c.deleteDisplay = displayscmd.NewDeleteDisplayHandler(c.displaySvc, commandsLogger,
		commands.WithTelemetry(commands.LogTelemetry[displayscmd.DeleteDisplayCommand](commandsLogger)),
	)
	return nil
}

func (c *Container) storageDriver() string {
	if !c.Config.Features.Persistence {
		return "memory"
	}
	driver := strings.ToLower(strings.TrimSpace(c.Config.Storage.Driver))
	if driver == "" {
		return "memory"
	}
	return driver
}

func (c *Container) logger(module string) interfaces.Logger {
	return logging.ModuleLogger(c.loggerProvider, module)
}

// Close releases the database opened by the container. Databases supplied
// through WithBunDB are left open.
func (c *Container) Close() error {
	if c == nil || c.bunDB == nil || !c.ownsDB {
		return nil
	}
	return c.bunDB.Close()
}

// LoggerProvider exposes the configured provider; nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

func (c *Container) SiteConfig() *siteconfig.Store {
	return c.settings
}

func (c *Container) Translator() *i18n.Translator {
	return c.translator
}

func (c *Container) ImageStyles() imagestyles.Registry {
	return c.styles
}

// Formatter returns the field formatter with gallery uniqueness wired to
// stored displays.
func (c *Container) Formatter() *formatter.Formatter {
	return c.formatter
}

func (c *Container) DisplayService() displays.Service {
	return c.displaySvc
}

// PathMatcher is nil when path visibility is disabled.
func (c *Container) PathMatcher() *pathmatch.Matcher {
	return c.matcher
}

func (c *Container) Loader() *loader.Loader {
	return c.loader
}

func (c *Container) Markup() *markup.Builder {
	return c.markup
}

func (c *Container) SaveDisplayHandler() *displayscmd.SaveDisplayHandler {
	return c.saveDisplay
}

func (c *Container) DeleteDisplayHandler() *displayscmd.DeleteDisplayHandler {
	return c.deleteDisplay
}
