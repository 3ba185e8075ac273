package interfaces

import "context"

// TokenReplacer expands placeholder tokens (e.g. "[entity:title]") inside
// free text using the supplied data. Unknown tokens are left untouched.
type TokenReplacer interface {
	Replace(ctx context.Context, text string, data map[string]any) string
}
