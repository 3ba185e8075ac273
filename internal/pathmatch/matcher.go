package pathmatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/goliatone/go-colorbox/internal/siteconfig"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

// FrontToken matches the site front page.
const FrontToken = "<front>"

// Visibility selects how listed pages are interpreted.
type Visibility int

const (
	// ExceptListed activates everywhere except the listed pages.
	ExceptListed Visibility = siteconfig.VisibilityExceptListed
	// OnlyListed activates on the listed pages only.
	OnlyListed Visibility = siteconfig.VisibilityOnlyListed
)

// Input describes the page being evaluated. Path is the internal path and
// Alias the public alias, both without a leading slash.
type Input struct {
	Path  string
	Alias string
	Front bool
}

// ActiveAlterer may flip the activation decision.
type ActiveAlterer func(ctx context.Context, in Input, active bool) bool

// Matcher decides whether the lightbox is active for a page.
type Matcher struct {
	visibility Visibility
	front      bool
	patterns   []glob.Glob
	raw        []string
	alterers   []ActiveAlterer
}

// Option customises a matcher.
type Option func(*Matcher)

// WithAlterers appends activation alterers, applied in order.
func WithAlterers(alterers ...ActiveAlterer) Option {
	return func(m *Matcher) {
		for _, alterer := range alterers {
			if alterer != nil {
				m.alterers = append(m.alterers, alterer)
			}
		}
	}
}

// New compiles a newline separated page list.
func New(visibility Visibility, pages string, opts ...Option) (*Matcher, error) {
	if visibility != ExceptListed && visibility != OnlyListed {
		return nil, fmt.Errorf("pathmatch: unknown visibility %d", visibility)
	}
	m := &Matcher{visibility: visibility}
	for _, line := range strings.Split(pages, "\n") {
		pattern := strings.ToLower(strings.TrimSpace(line))
		if pattern == "" {
			continue
		}
		if pattern == FrontToken {
			m.front = true
			m.raw = append(m.raw, pattern)
			continue
		}
		compiled, err := glob.Compile(quote(pattern))
		if err != nil {
			return nil, fmt.Errorf("pathmatch: compile %q: %w", pattern, err)
		}
		m.patterns = append(m.patterns, compiled)
		m.raw = append(m.raw, pattern)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m, nil
}

// FromConfig builds a matcher from advanced.visibility and advanced.pages.
func FromConfig(cfg interfaces.ConfigReader, opts ...Option) (*Matcher, error) {
	visibility := Visibility(cfg.GetInt(siteconfig.KeyVisibility, siteconfig.VisibilityExceptListed))
	pages := cfg.GetString(siteconfig.KeyPages, strings.Join(siteconfig.DefaultPages, "\n"))
	return New(visibility, pages, opts...)
}

// Patterns returns the normalised page patterns.
func (m *Matcher) Patterns() []string {
	return append([]string(nil), m.raw...)
}

// Listed reports whether the page matches the page list, checking the alias
// first and the internal path when it differs.
func (m *Matcher) Listed(in Input) bool {
	if m.front && in.Front {
		return true
	}
	path := normalize(in.Path)
	alias := normalize(in.Alias)
	if alias == "" {
		alias = path
	}
	if m.match(alias) {
		return true
	}
	return alias != path && m.match(path)
}

// Active applies the visibility mode and any alterers.
func (m *Matcher) Active(ctx context.Context, in Input) bool {
	listed := m.Listed(in)
	active := listed
	if m.visibility == ExceptListed {
		active = !listed
	}
	for _, alterer := range m.alterers {
		active = alterer(ctx, in, active)
	}
	return active
}

func (m *Matcher) match(path string) bool {
	for _, pattern := range m.patterns {
		if pattern.Match(path) {
			return true
		}
	}
	return false
}

func normalize(path string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(path), "/"))
}

// quote escapes glob syntax so only '*' keeps its wildcard meaning.
func quote(pattern string) string {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = glob.QuoteMeta(part)
	}
	return strings.Join(parts, "*")
}
