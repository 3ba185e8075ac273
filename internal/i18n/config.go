package i18n

import "strings"

type Config struct {
	DefaultLocale string   `json:"default_locale"`
	Locales       []string `json:"locales"`
}

func FromModuleConfig(defaultLocale string, locales []string) Config {
	return Config{
		DefaultLocale: defaultLocale,
		Locales:       locales,
	}
}

func (c Config) normalized() Config {
	out := Config{DefaultLocale: normalizeLocale(c.DefaultLocale)}
	if out.DefaultLocale == "" {
		out.DefaultLocale = "en"
	}
	seen := map[string]struct{}{}
	for _, locale := range append([]string{out.DefaultLocale}, c.Locales...) {
		code := normalizeLocale(locale)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out.Locales = append(out.Locales, code)
	}
	return out
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}
