package colorbox

import "github.com/goliatone/go-colorbox/internal/runtimeconfig"

var (
	ErrModulePathRequired       = runtimeconfig.ErrModulePathRequired
	ErrLibraryNameRequired      = runtimeconfig.ErrLibraryNameRequired
	ErrStorageDriverUnknown     = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired       = runtimeconfig.ErrStorageDSNRequired
	ErrAdvancedCacheRequiresSQL = runtimeconfig.ErrAdvancedCacheRequiresSQL
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
	ErrDefaultLocaleRequired    = runtimeconfig.ErrDefaultLocaleRequired
)

type (
	Config         = runtimeconfig.Config
	ModuleConfig   = runtimeconfig.ModuleConfig
	SettingsConfig = runtimeconfig.SettingsConfig
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	Features       = runtimeconfig.Features
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
