package i18n

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

// Translator resolves source strings against per-locale catalogs. Missing
// entries fall back through the locale's parents, then the default locale,
// then the source string itself.
type Translator struct {
	mu            sync.RWMutex
	defaultLocale string
	locales       []string
	messages      map[string]map[string]string
	matcher       language.Matcher
}

var (
	_ interfaces.Translator    = (*Translator)(nil)
	_ interfaces.LocaleMatcher = (*Translator)(nil)
)

// NewTranslator builds a translator from a fixture. A nil fixture yields a
// translator that formats source strings only.
func NewTranslator(fx *Fixture) *Translator {
	cfg := Config{}
	if fx != nil {
		cfg = fx.Config
	}
	cfg = cfg.normalized()

	t := &Translator{
		defaultLocale: cfg.DefaultLocale,
		messages:      map[string]map[string]string{},
	}
	if fx != nil {
		for locale, messages := range fx.Translations {
			t.addLocked(locale, messages)
		}
	}
	for _, locale := range cfg.Locales {
		t.registerLocale(locale)
	}
	t.rebuildMatcher()
	return t
}

// DefaultLocale returns the normalised default locale.
func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// Locales lists known locales, default first.
func (t *Translator) Locales() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.locales...)
}

// Add registers or overrides messages for a locale.
func (t *Translator) Add(locale string, messages map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.addLocked(locale, messages)
	t.rebuildMatcher()
}

func (t *Translator) Translate(locale, key string, args ...any) (string, error) {
	message := key
	t.mu.RLock()
	for _, candidate := range t.fallbackChain(locale) {
		if value, ok := t.messages[candidate][key]; ok && value != "" {
			message = value
			break
		}
	}
	t.mu.RUnlock()

	if len(args) == 0 {
		return message, nil
	}
	return fmt.Sprintf(message, args...), nil
}

// MatchLocale picks the best supported locale for an Accept-Language header.
func (t *Translator) MatchLocale(acceptLanguage string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if strings.TrimSpace(acceptLanguage) == "" || t.matcher == nil {
		return t.defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLocale
	}
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(t.locales) {
		return t.defaultLocale
	}
	return t.locales[index]
}

func (t *Translator) fallbackChain(locale string) []string {
	chain := []string{}
	code := normalizeLocale(locale)
	if code != "" {
		chain = append(chain, code)
		if tag, err := language.Parse(code); err == nil {
			for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
				chain = append(chain, normalizeLocale(parent.String()))
			}
		}
		if idx := strings.Index(code, "-"); idx > 0 {
			chain = append(chain, code[:idx])
		}
	}
	return append(chain, t.defaultLocale)
}

func (t *Translator) addLocked(locale string, messages map[string]string) {
	code := normalizeLocale(locale)
	if code == "" {
		return
	}
	target := t.messages[code]
	if target == nil {
		target = map[string]string{}
		t.messages[code] = target
	}
	for key, value := range messages {
		target[key] = value
	}
	t.registerLocale(code)
}

func (t *Translator) registerLocale(code string) {
	for _, existing := range t.locales {
		if existing == code {
			return
		}
	}
	if code == t.defaultLocale {
		t.locales = append([]string{code}, t.locales...)
		return
	}
	t.locales = append(t.locales, code)
}

func (t *Translator) rebuildMatcher() {
	tags := make([]language.Tag, 0, len(t.locales))
	for _, code := range t.locales {
		tags = append(tags, language.Make(code))
	}
	if len(tags) == 0 {
		t.matcher = nil
		return
	}
	t.matcher = language.NewMatcher(tags)
}

// NoOpTranslator formats source strings without lookups.
type NoOpTranslator struct{}

func (NoOpTranslator) Translate(_ string, key string, args ...any) (string, error) {
	if len(args) == 0 {
		return key, nil
	}
	return fmt.Sprintf(key, args...), nil
}
