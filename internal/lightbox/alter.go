package lightbox

import "context"

// Alterer rewrites the settings and style selection before they reach the page.
// Implementations must not mutate the settings they receive.
type Alterer interface {
	Alter(ctx context.Context, settings Settings, style string) (Settings, string)
}

// AlterFunc adapts a function to Alterer.
type AlterFunc func(ctx context.Context, settings Settings, style string) (Settings, string)

func (fn AlterFunc) Alter(ctx context.Context, settings Settings, style string) (Settings, string) {
	return fn(ctx, settings, style)
}

// Chain applies alterers in registration order. Later alterers see earlier
// results, so the last one to write a key wins.
type Chain []Alterer

func (c Chain) Alter(ctx context.Context, settings Settings, style string) (Settings, string) {
	current := settings.Clone()
	for _, alterer := range c {
		if alterer == nil {
			continue
		}
		next, nextStyle := alterer.Alter(ctx, current.Clone(), style)
		if next != nil {
			current = next
		}
		style = nextStyle
	}
	return current, style
}

// Override returns an alterer that writes fixed keys on top of the settings.
func Override(values Settings) Alterer {
	return AlterFunc(func(_ context.Context, settings Settings, style string) (Settings, string) {
		return settings.Merge(values), style
	})
}

// ForceStyle returns an alterer that replaces the style selection.
func ForceStyle(style string) Alterer {
	return AlterFunc(func(_ context.Context, settings Settings, _ string) (Settings, string) {
		return settings, style
	})
}
