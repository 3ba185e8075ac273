package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

const (
	rootModule      = "colorbox"
	loaderModule    = "colorbox.loader"
	formatterModule = "colorbox.formatter"
	displaysModule  = "colorbox.displays"
	markupModule    = "colorbox.markup"
)

const (
	fieldRequestPath   = "path"
	fieldRequestLocale = "locale"
	fieldEntityType    = "entity_type"
	fieldFieldName     = "field"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// LoaderLogger returns the logger namespace reserved for the asset loader.
func LoaderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, loaderModule)
}

// FormatterLogger returns the logger namespace reserved for the field formatter.
func FormatterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, formatterModule)
}

// DisplaysLogger returns the logger namespace reserved for display persistence.
func DisplaysLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, displaysModule)
}

// MarkupLogger returns the logger namespace reserved for lightbox markup.
func MarkupLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markupModule)
}

// WithRequestContext enriches the logger with the request path and locale.
// Empty values are ignored.
func WithRequestContext(logger interfaces.Logger, path, locale string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldRequestPath] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldRequestLocale] = trimmed
	}
	return WithFields(logger, fields)
}

// WithFieldContext enriches the logger with the entity type and field name
// being rendered.
func WithFieldContext(logger interfaces.Logger, entityType, field string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(entityType); trimmed != "" {
		fields[fieldEntityType] = trimmed
	}
	if trimmed := strings.TrimSpace(field); trimmed != "" {
		fields[fieldFieldName] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

// EnsureLogger returns logger or a no-op when nil.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return NoOp()
	}
	return logger
}
