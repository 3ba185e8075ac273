package interfaces

// Translator resolves a source string (or key) for a locale. Implementations
// return the key itself when no translation exists.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// LocaleMatcher picks the best supported locale for an Accept-Language header.
type LocaleMatcher interface {
	MatchLocale(acceptLanguage string) string
}
