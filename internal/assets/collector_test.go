package assets

import (
	"context"
	"strings"
	"testing"
)

func TestCollectorKeepsFirstAddedOrder(t *testing.T) {
	c := NewCollector()
	c.AddScript("modules/colorbox/js/colorbox.js")
	c.AddScript("modules/colorbox/js/colorbox_load.js")
	c.AddScript("modules/colorbox/js/colorbox.js")
	c.AddScript("")
	c.AddStylesheet("a.css")
	c.AddStylesheet("a.css")
	c.AddLibrary("colorbox", "minified")
	c.AddLibrary("colorbox", "source")
	c.AddSetting("colorbox", map[string]any{"opacity": "0.85"})

	snap := c.Snapshot()
	if len(snap.Scripts) != 2 || snap.Scripts[0] != "modules/colorbox/js/colorbox.js" {
		t.Fatalf("unexpected scripts %v", snap.Scripts)
	}
	if len(snap.Stylesheets) != 1 {
		t.Fatalf("expected one stylesheet, got %v", snap.Stylesheets)
	}
	if len(snap.Libraries) != 1 || snap.Libraries[0].Variant != "minified" {
		t.Fatalf("expected first library directive to win, got %v", snap.Libraries)
	}
	if snap.Empty() {
		t.Fatalf("snapshot should not be empty")
	}

	snap.Scripts[0] = "changed"
	if c.Snapshot().Scripts[0] == "changed" {
		t.Fatalf("snapshot must be a copy")
	}
}

func TestContextRoundTrip(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("expected no collector on bare context")
	}
	c := NewCollector()
	ctx := WithCollector(context.Background(), c)
	got, ok := FromContext(ctx)
	if !ok || got != c {
		t.Fatalf("expected collector from context")
	}
}

func TestLibraryResolver(t *testing.T) {
	resolver := LibraryResolver{Paths: map[string]string{"colorbox": "sites/all/libraries/colorbox"}}

	cases := []struct {
		variant string
		want    string
	}{
		{variant: "minified", want: "sites/all/libraries/colorbox/jquery.colorbox-min.js"},
		{variant: "", want: "sites/all/libraries/colorbox/jquery.colorbox-min.js"},
		{variant: "source", want: "sites/all/libraries/colorbox/jquery.colorbox.js"},
		{variant: "none", want: ""},
	}
	for _, tc := range cases {
		if got := resolver.Script(Library{Name: "colorbox", Variant: tc.variant}); got != tc.want {
			t.Fatalf("variant %q: expected %q, got %q", tc.variant, tc.want, got)
		}
	}

	if got := (LibraryResolver{}).Script(Library{Name: "colorbox"}); got != "libraries/colorbox/jquery.colorbox-min.js" {
		t.Fatalf("unexpected default path %q", got)
	}
}

func TestRenderHead(t *testing.T) {
	c := NewCollector()
	c.AddSetting("colorbox", map[string]any{"close": "<Close>"})
	c.AddLibrary("colorbox", "minified")
	c.AddScript("modules/colorbox/js/colorbox.js")
	c.AddStylesheet("modules/colorbox/styles/plain/colorbox_style.css")
	c.AddStylesheet("https://cdn.example.com/skin.css")

	out, err := RenderHead(c.Snapshot(), LibraryResolver{}, "/static/")
	if err != nil {
		t.Fatalf("RenderHead: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`<link rel="stylesheet" href="/static/modules/colorbox/styles/plain/colorbox_style.css">`,
		`<link rel="stylesheet" href="https://cdn.example.com/skin.css">`,
		`<script src="/static/libraries/colorbox/jquery.colorbox-min.js"></script>`,
		`<script src="/static/modules/colorbox/js/colorbox.js"></script>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if strings.Index(html, "jquery.colorbox-min.js") > strings.Index(html, "js/colorbox.js") {
		t.Fatalf("library must load before the init script:\n%s", html)
	}
	if strings.Contains(html, "<Close>") {
		t.Fatalf("settings must be escaped:\n%s", html)
	}
}

func TestRenderHeadEmpty(t *testing.T) {
	out, err := RenderHead(Snapshot{}, LibraryResolver{}, "")
	if err != nil {
		t.Fatalf("RenderHead: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
