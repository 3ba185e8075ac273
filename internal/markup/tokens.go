package markup

import (
	"context"
	"fmt"
	"regexp"

	"github.com/goliatone/go-colorbox/internal/formatter"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

var tokenPattern = regexp.MustCompile(`\[([a-z_]+):([a-z_]+)\]`)

// TokenData exposes a descriptor to token replacement. The entity is
// available under its type and under "entity"; the item under "file".
func TokenData(desc formatter.RenderDescriptor) map[string]any {
	data := map[string]any{
		"file": desc.Item,
	}
	if desc.Entity != nil {
		data["entity"] = desc.Entity
		if desc.EntityType != "" {
			data[desc.EntityType] = desc.Entity
		}
	}
	return data
}

// BasicTokens expands [type:property] tokens for entities and image items.
// Unknown tokens are removed.
type BasicTokens struct{}

var _ interfaces.TokenReplacer = BasicTokens{}

func (BasicTokens) Replace(_ context.Context, text string, data map[string]any) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		parts := tokenPattern.FindStringSubmatch(token)
		value, ok := data[parts[1]]
		if !ok {
			return ""
		}
		return tokenValue(value, parts[2])
	})
}

func tokenValue(value any, property string) string {
	switch typed := value.(type) {
	case formatter.Entity:
		switch property {
		case "title", "label":
			return typed.Label()
		case "id", "nid":
			return typed.EntityID()
		case "type":
			return typed.EntityType()
		}
	case formatter.ImageItem:
		switch property {
		case "alt":
			return typed.Alt
		case "title":
			return typed.Title
		case "uri":
			return typed.URI
		case "width":
			return fmt.Sprint(typed.Width)
		case "height":
			return fmt.Sprint(typed.Height)
		}
	}
	return ""
}
