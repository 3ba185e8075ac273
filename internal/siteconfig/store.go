package siteconfig

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

// ErrLoad wraps failures to read a settings document.
var ErrLoad = errors.New("siteconfig: load settings")

// Store is a viper-backed hierarchical settings store read by dotted path.
type Store struct {
	vp *viper.Viper
}

var _ interfaces.ConfigReader = (*Store)(nil)

// Option customises store construction.
type Option func(*options)

type options struct {
	defaults  bool
	envPrefix string
	validate  bool
}

// WithoutDefaults skips seeding the store with the shipped settings.
func WithoutDefaults() Option {
	return func(o *options) { o.defaults = false }
}

// WithEnvPrefix enables environment overrides such as COLORBOX_CUSTOM_STYLE.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.envPrefix = strings.TrimSpace(prefix) }
}

// WithSchemaValidation toggles schema validation when documents are loaded.
func WithSchemaValidation(enabled bool) Option {
	return func(o *options) { o.validate = enabled }
}

// New returns a store seeded with Defaults.
func New(opts ...Option) *Store {
	o := options{defaults: true, validate: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return newStore(o)
}

func newStore(o options) *Store {
	vp := viper.New()
	if o.defaults {
		seedDefaults(vp, "", Defaults())
	}
	if o.envPrefix != "" {
		vp.SetEnvPrefix(o.envPrefix)
		vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		vp.AutomaticEnv()
	}
	return &Store{vp: vp}
}

// Load reads a YAML, JSON or TOML settings file on top of the defaults.
func Load(path string, opts ...Option) (*Store, error) {
	o := options{defaults: true, validate: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	store := newStore(o)
	store.vp.SetConfigFile(path)
	if err := store.vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrLoad, path, err)
	}
	if o.validate {
		if err := store.Validate(); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// LoadReader reads a settings document of the given format ("yaml", "json").
func LoadReader(r io.Reader, format string, opts ...Option) (*Store, error) {
	o := options{defaults: true, validate: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	store := newStore(o)
	store.vp.SetConfigType(format)
	if err := store.vp.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if o.validate {
		if err := store.Validate(); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// FromMap builds a store from a nested settings map merged over the defaults.
func FromMap(values map[string]any, opts ...Option) (*Store, error) {
	store := New(opts...)
	if len(values) == 0 {
		return store, nil
	}
	if err := store.vp.MergeConfigMap(values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return store, nil
}

// Validate checks the effective settings against the settings schema.
func (s *Store) Validate() error {
	return ValidateDocument(s.vp.AllSettings())
}

// Set overrides a single key.
func (s *Store) Set(key string, value any) {
	s.vp.Set(key, value)
}

// IsSet reports whether the key resolves to a value, defaults included.
func (s *Store) IsSet(key string) bool {
	return s.vp.Get(key) != nil
}

func (s *Store) GetString(key, fallback string) string {
	if !s.IsSet(key) {
		return fallback
	}
	return s.vp.GetString(key)
}

func (s *Store) GetBool(key string, fallback bool) bool {
	if !s.IsSet(key) {
		return fallback
	}
	return s.vp.GetBool(key)
}

func (s *Store) GetInt(key string, fallback int) int {
	if !s.IsSet(key) {
		return fallback
	}
	return s.vp.GetInt(key)
}

func (s *Store) GetFloat(key string, fallback float64) float64 {
	if !s.IsSet(key) {
		return fallback
	}
	return s.vp.GetFloat64(key)
}

// AllSettings returns the effective nested settings document.
func (s *Store) AllSettings() map[string]any {
	return s.vp.AllSettings()
}

// Keys lists every leaf key in sorted order.
func (s *Store) Keys() []string {
	keys := s.vp.AllKeys()
	sort.Strings(keys)
	return keys
}

func seedDefaults(vp *viper.Viper, prefix string, values map[string]any) {
	for key, value := range values {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			seedDefaults(vp, path, nested)
			continue
		}
		vp.SetDefault(path, value)
	}
}
