package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrModulePathRequired       = errors.New("colorbox config: module base path is required")
	ErrLibraryNameRequired      = errors.New("colorbox config: library name is required")
	ErrStorageDriverUnknown     = errors.New("colorbox config: storage driver is invalid")
	ErrStorageDSNRequired       = errors.New("colorbox config: storage dsn is required for sql drivers")
	ErrAdvancedCacheRequiresSQL = errors.New("colorbox config: display cache requires a sql storage driver")
	ErrLoggingProviderRequired  = errors.New("colorbox config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown   = errors.New("colorbox config: logging provider is invalid")
	ErrLoggingLevelInvalid      = errors.New("colorbox config: logging level is invalid")
	ErrLoggingFormatInvalid     = errors.New("colorbox config: logging format is invalid")
	ErrDefaultLocaleRequired    = errors.New("colorbox config: default locale is required")
)

// Config aggregates feature flags and adapter bindings for the colorbox module.
type Config struct {
	// Enabled turns asset attachment off when false. Formatting still works.
	Enabled       bool
	DefaultLocale string
	Locales       []string
	Module        ModuleConfig
	Settings      SettingsConfig
	Storage       StorageConfig
	Cache         CacheConfig
	Features      Features
	Logging       LoggingConfig
}

// ModuleConfig locates the module's static files and the third-party library.
type ModuleConfig struct {
	BasePath    string
	LibraryName string
	LibraryPath string
}

// SettingsConfig points at the site settings document (YAML or JSON) and an
// optional translation fixture merged over the embedded catalog.
type SettingsConfig struct {
	File             string
	EnvPrefix        string
	Validate         bool
	TranslationsFile string
}

// StorageConfig selects the display settings persistence driver.
type StorageConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures display repository cache toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// Features toggles module functionality.
type Features struct {
	PathVisibility bool
	Persistence    bool
	Logger         bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns defaults matching the module's shipped behaviour.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en",
		Locales:       []string{"en"},
		Module: ModuleConfig{
			BasePath:    "modules/colorbox",
			LibraryName: "colorbox",
			LibraryPath: "libraries/colorbox",
		},
		Settings: SettingsConfig{
			EnvPrefix: "COLORBOX",
			Validate:  true,
		},
		Storage: StorageConfig{
			Driver: "memory",
		},
		Cache: CacheConfig{
			DefaultTTL: time.Minute,
		},
		Features: Features{
			PathVisibility: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if strings.TrimSpace(cfg.Module.BasePath) == "" {
		return ErrModulePathRequired
	}
	if strings.TrimSpace(cfg.Module.LibraryName) == "" {
		return ErrLibraryNameRequired
	}
	if cfg.Features.Persistence {
		driver := normalize(cfg.Storage.Driver)
		if !isSupportedDriver(driver) {
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
		}
		if driver != "memory" && strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
		if cfg.Cache.Enabled && driver == "memory" {
			return ErrAdvancedCacheRequiresSQL
		}
	}
	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedDriver(driver string) bool {
	switch driver {
	case "memory", "sqlite":
		return true
	default:
		return false
	}
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
