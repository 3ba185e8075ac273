package imagestyles

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrStyleIDRequired = errors.New("imagestyles: style id required")
	ErrStyleExists     = errors.New("imagestyles: style already registered")
)

// Style is a named image derivative.
type Style struct {
	ID    string
	Label string
}

// Registry exposes the live image styles.
type Registry interface {
	Styles() []Style
	Lookup(id string) (Style, bool)
}

// MemoryRegistry keeps styles in registration order.
type MemoryRegistry struct {
	mu     sync.RWMutex
	order  []string
	styles map[string]Style
}

var _ Registry = (*MemoryRegistry)(nil)

func NewMemoryRegistry(styles ...Style) *MemoryRegistry {
	r := &MemoryRegistry{styles: map[string]Style{}}
	for _, style := range styles {
		_ = r.Register(style)
	}
	return r
}

// Register adds a style. Labels default to the id.
func (r *MemoryRegistry) Register(style Style) error {
	style.ID = strings.TrimSpace(style.ID)
	if style.ID == "" {
		return ErrStyleIDRequired
	}
	if style.Label == "" {
		style.Label = style.ID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.styles[style.ID]; ok {
		return fmt.Errorf("%w: %s", ErrStyleExists, style.ID)
	}
	r.styles[style.ID] = style
	r.order = append(r.order, style.ID)
	return nil
}

// Remove deletes a style. Settings that still reference it resolve to the
// original image.
func (r *MemoryRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.styles[id]; !ok {
		return
	}
	delete(r.styles, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *MemoryRegistry) Styles() []Style {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Style, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.styles[id])
	}
	return out
}

func (r *MemoryRegistry) Lookup(id string) (Style, bool) {
	if id == "" {
		return Style{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	style, ok := r.styles[id]
	return style, ok
}

// Defaults returns the core image styles.
func Defaults() []Style {
	return []Style{
		{ID: "thumbnail", Label: "Thumbnail (100×100)"},
		{ID: "medium", Label: "Medium (220×220)"},
		{ID: "large", Label: "Large (480×480)"},
	}
}

// URL returns the derivative URL for uri under style. An empty style yields uri.
func URL(style, uri string) string {
	if style == "" {
		return uri
	}
	scheme, target := "", uri
	if idx := strings.Index(uri, "://"); idx > 0 {
		scheme, target = uri[:idx], uri[idx+3:]
	}
	target = strings.TrimLeft(target, "/")
	if scheme == "" || scheme == "public" {
		return "styles/" + style + "/public/" + target
	}
	if scheme == "http" || scheme == "https" {
		return uri
	}
	return "styles/" + style + "/" + scheme + "/" + target
}
