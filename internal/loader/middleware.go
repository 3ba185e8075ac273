package loader

import (
	"context"
	"net/http"
	"strings"

	"github.com/goliatone/go-colorbox/internal/assets"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

// AliasResolver maps an internal path to its public alias.
type AliasResolver interface {
	Alias(ctx context.Context, internalPath string) string
}

// MiddlewareOption customises Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	aliases   AliasResolver
	frontPath string
	locales   interfaces.LocaleMatcher
}

// WithAliasResolver resolves path aliases for page matching.
func WithAliasResolver(resolver AliasResolver) MiddlewareOption {
	return func(c *middlewareConfig) { c.aliases = resolver }
}

// WithFrontPath sets the internal path served as the front page.
func WithFrontPath(p string) MiddlewareOption {
	return func(c *middlewareConfig) { c.frontPath = strings.Trim(p, "/") }
}

// WithLocaleMatcher derives the request locale from Accept-Language.
func WithLocaleMatcher(matcher interfaces.LocaleMatcher) MiddlewareOption {
	return func(c *middlewareConfig) { c.locales = matcher }
}

type requestKey struct{}

// RequestFromContext returns the loader request stored by Middleware.
func RequestFromContext(ctx context.Context) (*Request, bool) {
	if ctx == nil {
		return nil, false
	}
	req, ok := ctx.Value(requestKey{}).(*Request)
	return req, ok && req != nil
}

// ContextWithRequest stores a loader request on the context.
func ContextWithRequest(ctx context.Context, req *Request) context.Context {
	return context.WithValue(ctx, requestKey{}, req)
}

// NewRequest builds a loader request for an HTTP request with a fresh collector.
func NewRequest(r *http.Request, opts ...MiddlewareOption) (*Request, *assets.Collector) {
	cfg := middlewareConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	internal := strings.Trim(r.URL.Path, "/")
	collector := assets.NewCollector()
	req := &Request{
		Path:   internal,
		Alias:  internal,
		Front:  internal == "" || (cfg.frontPath != "" && internal == cfg.frontPath),
		Assets: collector,
	}
	if cfg.aliases != nil {
		if alias := strings.Trim(cfg.aliases.Alias(r.Context(), internal), "/"); alias != "" {
			req.Alias = alias
		}
	}
	if cfg.locales != nil {
		req.Locale = cfg.locales.MatchLocale(r.Header.Get("Accept-Language"))
	}
	return req, collector
}

// Middleware runs the loader for every request before the wrapped handler and
// exposes the request and its collector on the context.
func Middleware(l *Loader, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req, collector := NewRequest(r, opts...)
			ctx := ContextWithRequest(r.Context(), req)
			ctx = assets.WithCollector(ctx, collector)
			l.MaybeAttach(ctx, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
