package colorbox_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-colorbox"
)

func TestConfigValidateCacheRequiresSQLStorage(t *testing.T) {
	cfg := colorbox.DefaultConfig()
	cfg.Features.Persistence = true
	cfg.Cache.Enabled = true

	if err := cfg.Validate(); !errors.Is(err, colorbox.ErrAdvancedCacheRequiresSQL) {
		t.Fatalf("expected ErrAdvancedCacheRequiresSQL, got %v", err)
	}
}

func TestConfigValidateLoggingProviderUnknown(t *testing.T) {
	cfg := colorbox.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, colorbox.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidateDefaultLocaleRequired(t *testing.T) {
	cfg := colorbox.DefaultConfig()
	cfg.DefaultLocale = ""

	if err := cfg.Validate(); !errors.Is(err, colorbox.ErrDefaultLocaleRequired) {
		t.Fatalf("expected ErrDefaultLocaleRequired, got %v", err)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := colorbox.DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
