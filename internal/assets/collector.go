package assets

import (
	"context"
	"maps"
	"sync"

	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

// Library is a third-party library load directive.
type Library struct {
	Name    string
	Variant string
}

// Snapshot is an immutable view of collected directives.
type Snapshot struct {
	Settings    map[string]any
	Libraries   []Library
	Scripts     []string
	Stylesheets []string
}

// Empty reports whether nothing was collected.
func (s Snapshot) Empty() bool {
	return len(s.Settings) == 0 && len(s.Libraries) == 0 && len(s.Scripts) == 0 && len(s.Stylesheets) == 0
}

// Collector records asset directives for one page. Paths are kept once, in
// first-added order.
type Collector struct {
	mu          sync.Mutex
	settings    map[string]any
	libraries   []Library
	scripts     []string
	stylesheets []string
}

var _ interfaces.AssetPipeline = (*Collector)(nil)

func NewCollector() *Collector {
	return &Collector{settings: map[string]any{}}
}

func (c *Collector) AddSetting(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings[key] = value
}

func (c *Collector) AddLibrary(name, variant string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, lib := range c.libraries {
		if lib.Name == name {
			return
		}
	}
	c.libraries = append(c.libraries, Library{Name: name, Variant: variant})
}

func (c *Collector) AddScript(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scripts = appendUnique(c.scripts, path)
}

func (c *Collector) AddStylesheet(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stylesheets = appendUnique(c.stylesheets, path)
}

// Snapshot copies the collected directives.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Settings:    maps.Clone(c.settings),
		Libraries:   append([]Library(nil), c.libraries...),
		Scripts:     append([]string(nil), c.scripts...),
		Stylesheets: append([]string(nil), c.stylesheets...),
	}
}

func appendUnique(list []string, value string) []string {
	if value == "" {
		return list
	}
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}

type collectorKey struct{}

// WithCollector stores a collector on the context.
func WithCollector(ctx context.Context, c *Collector) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, collectorKey{}, c)
}

// FromContext returns the collector stored by WithCollector.
func FromContext(ctx context.Context) (*Collector, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(collectorKey{}).(*Collector)
	return c, ok && c != nil
}
