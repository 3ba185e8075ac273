package i18n

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Fixture represents a serialised bundle of configuration + translations.
type Fixture struct {
	Config       Config                       `json:"config"`
	Translations map[string]map[string]string `json:"translations"`
}

//go:embed catalog/*.json
var catalogFS embed.FS

// DefaultCatalog loads the shipped formatter and settings strings.
func DefaultCatalog() (*Fixture, error) {
	entries, err := catalogFS.ReadDir("catalog")
	if err != nil {
		return nil, fmt.Errorf("i18n: read embedded catalog: %w", err)
	}

	fx := &Fixture{
		Config:       Config{DefaultLocale: "en"},
		Translations: map[string]map[string]string{},
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := catalogFS.ReadFile("catalog/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: read catalog %q: %w", entry.Name(), err)
		}
		messages := map[string]string{}
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&messages); err != nil {
			return nil, fmt.Errorf("i18n: decode catalog %q: %w", entry.Name(), err)
		}
		locale := strings.TrimSuffix(entry.Name(), ".json")
		fx.Translations[locale] = messages
		fx.Config.Locales = append(fx.Config.Locales, locale)
	}

	return fx, nil
}

// Loader reads translation fixtures from disk.
type Loader struct {
	path string
}

// NewLoader constructs a loader that reads the provided file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the configured fixture file.
func (l *Loader) Load(ctx context.Context) (*Fixture, error) {
	if l == nil || l.path == "" {
		return nil, errors.New("i18n: loader path cannot be empty")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("i18n: open fixture %q: %w", l.path, err)
	}
	defer file.Close()

	return decodeFixture(file)
}

func decodeFixture(r io.Reader) (*Fixture, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var fx Fixture
	if err := decoder.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if fx.Translations == nil {
		fx.Translations = map[string]map[string]string{}
	}

	return &fx, nil
}

// Merge layers the other fixture's messages over f. Locales are unioned.
func (f *Fixture) Merge(other *Fixture) {
	if f == nil || other == nil {
		return
	}
	if f.Translations == nil {
		f.Translations = map[string]map[string]string{}
	}
	for locale, messages := range other.Translations {
		target := f.Translations[locale]
		if target == nil {
			target = map[string]string{}
			f.Translations[locale] = target
			f.Config.Locales = append(f.Config.Locales, locale)
		}
		for key, value := range messages {
			target[key] = value
		}
	}
	if other.Config.DefaultLocale != "" {
		f.Config.DefaultLocale = other.Config.DefaultLocale
	}
}
