package interfaces

// ConfigReader reads hierarchical site configuration by dotted path
// (e.g. "custom.activate"). Every read supplies a fallback so a missing key
// never produces an error.
type ConfigReader interface {
	GetString(key, fallback string) string
	GetBool(key string, fallback bool) bool
	GetInt(key string, fallback int) int
	GetFloat(key string, fallback float64) float64
	IsSet(key string) bool
}
