package colorbox_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-colorbox"
)

func newModule(t *testing.T) *colorbox.Module {
	t.Helper()
	m, err := colorbox.New(colorbox.DefaultConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestMiddlewareAttachesAndRendersHead(t *testing.T) {
	m := newModule(t)

	var head string
	handler := m.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, ok := colorbox.AssetsFromContext(r.Context())
		if !ok {
			t.Fatal("expected collector on context")
		}
		out, err := m.RenderHead(snapshot, "/")
		if err != nil {
			t.Fatalf("RenderHead: %v", err)
		}
		head = string(out)
	}))

	req := httptest.NewRequest(http.MethodGet, "/node/1", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	for _, want := range []string{
		`href="/modules/colorbox/styles/default/colorbox_style.css"`,
		`src="/libraries/colorbox/jquery.colorbox-min.js"`,
		`src="/modules/colorbox/js/colorbox.js"`,
		`data-settings="page"`,
	} {
		if !strings.Contains(head, want) {
			t.Fatalf("expected head to contain %s, got:\n%s", want, head)
		}
	}
}

func TestMiddlewareSkipsExcludedPaths(t *testing.T) {
	m := newModule(t)

	var empty bool
	handler := m.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, _ := colorbox.AssetsFromContext(r.Context())
		empty = snapshot.Empty()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/structure", nil))

	if !empty {
		t.Fatal("expected no assets on admin pages")
	}
}

func TestSaveDisplayAndRenderHTML(t *testing.T) {
	ctx := context.Background()
	m := newModule(t)

	settings := colorbox.DisplaySettings{
		NodeStyle:  "thumbnail",
		ImageStyle: "large",
		Gallery:    "custom",
		Caption:    "title",
	}
	settings.GalleryCustom = "trip"
	err := m.SaveDisplay(ctx, colorbox.SaveDisplayCommand{
		EntityType: "node", Bundle: "article", Field: "field_image", ViewMode: "full",
		Settings: settings,
	})
	if err != nil {
		t.Fatalf("SaveDisplay: %v", err)
	}

	entity := colorbox.BasicEntity{Type: "node", ID: "7", Title: "Trip"}
	field := colorbox.FieldDefinition{Name: "field_image", Type: "image", Bundle: "article"}
	items := []colorbox.ImageItem{{URI: "public://beach.jpg", Alt: "Beach", Title: "At the beach"}}

	out, err := m.RenderHTML(ctx, entity, "en", field, "full", items)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `rel="trip"`) || !strings.Contains(html, `title="At the beach"`) {
		t.Fatalf("unexpected markup %s", html)
	}

	summary := m.SettingsSummary(ctx, colorbox.DisplayKey{EntityType: "node", Bundle: "article", Field: "field_image", ViewMode: "full"}, "en")
	if len(summary) != 4 || !strings.HasSuffix(summary[2], "(trip)") {
		t.Fatalf("unexpected summary %v", summary)
	}
}

func TestSettingsFormGalleryCheckIgnoresOwnDisplay(t *testing.T) {
	ctx := context.Background()
	m := newModule(t)

	settings := colorbox.DisplaySettings{Gallery: "custom", GalleryCustom: "trip"}
	err := m.SaveDisplay(ctx, colorbox.SaveDisplayCommand{
		EntityType: "node", Bundle: "article", Field: "field_image", ViewMode: "full",
		Settings: settings,
	})
	if err != nil {
		t.Fatalf("SaveDisplay: %v", err)
	}

	own := colorbox.DisplayKey{EntityType: "node", Bundle: "article", Field: "field_image", ViewMode: "full"}
	el, ok := m.SettingsForm(ctx, own, "en").Element("colorbox_gallery_custom")
	if !ok || el.Exists == nil {
		t.Fatal("expected custom gallery element with an exists check")
	}
	if el.Exists(ctx, "trip") {
		t.Fatal("expected the display's own gallery to be available")
	}

	other := colorbox.DisplayKey{EntityType: "node", Bundle: "article", Field: "field_banner", ViewMode: "full"}
	el, _ = m.SettingsForm(ctx, other, "en").Element("colorbox_gallery_custom")
	if !el.Exists(ctx, "trip") {
		t.Fatal("expected another display to see the gallery as taken")
	}
}
