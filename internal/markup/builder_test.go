package markup

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-colorbox/internal/formatter"
	"github.com/goliatone/go-colorbox/internal/siteconfig"
)

func descriptor(settings formatter.DisplaySettings, item formatter.ImageItem) formatter.RenderDescriptor {
	entity := formatter.BasicEntity{Type: "node", ID: "42", Title: "Summer trip"}
	return formatter.RenderDescriptor{
		Theme:           formatter.ThemeHook,
		Item:            item,
		EntityType:      "node",
		Entity:          entity,
		Node:            entity,
		Field:           formatter.FieldDefinition{Name: "field_photos", Type: "image"},
		DisplaySettings: settings,
		Langcode:        "en",
	}
}

func TestGalleryID(t *testing.T) {
	cases := []struct {
		mode   formatter.GalleryMode
		custom string
		want   string
	}{
		{mode: formatter.GalleryPost, want: "gallery-node-42"},
		{mode: formatter.GalleryPage, want: "gallery-all"},
		{mode: formatter.GalleryFieldPost, want: "gallery-node-42-field_photos"},
		{mode: formatter.GalleryFieldPage, want: "gallery-field_photos"},
		{mode: formatter.GalleryCustom, custom: "holiday", want: "holiday"},
		{mode: formatter.GalleryNone, want: ""},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			settings := formatter.DefaultSettings()
			settings.Gallery = tc.mode
			settings.GalleryCustom = tc.custom
			if got := GalleryID(descriptor(settings, formatter.ImageItem{})); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	anonymous := descriptor(formatter.DefaultSettings(), formatter.ImageItem{})
	anonymous.Entity = nil
	if got := GalleryID(anonymous); got != "gallery-entity-id" {
		t.Fatalf("expected placeholder entity id, got %q", got)
	}
}

func TestCaptionModes(t *testing.T) {
	b := NewBuilder(siteconfig.New(), WithTokenReplacer(BasicTokens{}))
	item := formatter.ImageItem{URI: "public://a.jpg", Alt: "Beach", Title: "<b>Sunset</b> & sea"}

	cases := []struct {
		name    string
		caption formatter.CaptionMode
		custom  string
		item    formatter.ImageItem
		want    string
	}{
		{name: "auto prefers title", caption: formatter.CaptionAuto, item: item, want: "Sunset & sea"},
		{name: "auto falls back to alt", caption: formatter.CaptionAuto, item: formatter.ImageItem{Alt: "Beach"}, want: "Beach"},
		{name: "auto falls back to label", caption: formatter.CaptionAuto, item: formatter.ImageItem{}, want: "Summer trip"},
		{name: "title", caption: formatter.CaptionTitle, item: formatter.ImageItem{Alt: "Beach"}, want: ""},
		{name: "alt", caption: formatter.CaptionAlt, item: item, want: "Beach"},
		{name: "node title", caption: formatter.CaptionNodeTitle, item: item, want: "Summer trip"},
		{name: "custom tokens", caption: formatter.CaptionCustom, custom: "[node:title]: [file:alt] [user:name]", item: item, want: "Summer trip: Beach"},
		{name: "none", caption: formatter.CaptionNone, item: item, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := formatter.DefaultSettings()
			settings.Caption = tc.caption
			settings.CaptionCustom = tc.custom
			if got := b.Build(context.Background(), descriptor(settings, tc.item)).Caption; got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCaptionTrim(t *testing.T) {
	long := strings.Repeat("abcdefghij", 3)
	cases := []struct {
		name   string
		values map[string]any
		want   string
	}{
		{name: "disabled", values: map[string]any{"advanced": map[string]any{"caption_trim_length": 10}}, want: long},
		{name: "enabled", values: map[string]any{"advanced": map[string]any{"caption_trim": true, "caption_trim_length": 10}}, want: "abcde..."},
		{
			name: "example style",
			values: map[string]any{
				"custom":   map[string]any{"style": "sites/all/modules/colorbox/example1"},
				"advanced": map[string]any{"caption_trim_length": 12},
			},
			want: "abcdefg...",
		},
		{name: "short enough", values: map[string]any{"advanced": map[string]any{"caption_trim": true, "caption_trim_length": 40}}, want: long},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := siteconfig.FromMap(tc.values)
			if err != nil {
				t.Fatalf("store: %v", err)
			}
			got := NewBuilder(store).Build(context.Background(), descriptor(formatter.DefaultSettings(), formatter.ImageItem{Title: long})).Caption
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestBuildImageStyles(t *testing.T) {
	b := NewBuilder(siteconfig.New())
	item := formatter.ImageItem{URI: "public://photos/a.jpg", Alt: "Beach", Width: 640, Height: 480}

	plain := b.Build(context.Background(), descriptor(formatter.DefaultSettings(), item))
	if plain.Href != "/sites/default/files/photos/a.jpg" || plain.Image == nil || plain.Image.Width != 640 {
		t.Fatalf("unexpected original image link %+v", plain)
	}

	styled := formatter.DefaultSettings()
	styled.NodeStyle = "thumbnail"
	styled.ImageStyle = "large"
	link := b.Build(context.Background(), descriptor(styled, item))
	if link.Href != "/sites/default/files/styles/large/public/photos/a.jpg" {
		t.Fatalf("unexpected href %q", link.Href)
	}
	if link.Image.Src != "/sites/default/files/styles/thumbnail/public/photos/a.jpg" || link.Image.Width != 0 {
		t.Fatalf("unexpected styled image %+v", link.Image)
	}

	hidden := formatter.DefaultSettings()
	hidden.NodeStyle = formatter.HideStyle
	link = b.Build(context.Background(), descriptor(hidden, item))
	if link.Image != nil || link.Class() != "colorbox js-hide" {
		t.Fatalf("expected hidden image link, got %+v", link)
	}
}

func TestRender(t *testing.T) {
	b := NewBuilder(siteconfig.New(), WithBaseURL("https://example.com/"))
	descs := map[int]formatter.RenderDescriptor{
		1: descriptor(formatter.DefaultSettings(), formatter.ImageItem{URI: "public://b.jpg", Alt: "Second"}),
		0: descriptor(formatter.DefaultSettings(), formatter.ImageItem{URI: "public://a.jpg", Alt: "First \"quoted\"", Width: 10, Height: 20}),
	}

	out, err := b.Render(context.Background(), descs)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(string(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two links, got %q", out)
	}
	want := `<a href="https://example.com/sites/default/files/a.jpg" class="colorbox" title="First &#34;quoted&#34;" rel="gallery-node-42" data-colorbox-gallery="gallery-node-42"><img src="https://example.com/sites/default/files/a.jpg" alt="First &#34;quoted&#34;" width="10" height="20"></a>`
	if lines[0] != want {
		t.Fatalf("unexpected first link\nwant %s\ngot  %s", want, lines[0])
	}
	if !strings.Contains(lines[1], `href="https://example.com/sites/default/files/b.jpg"`) {
		t.Fatalf("expected second link in item order, got %s", lines[1])
	}
}

func TestGalleryIDNormalisesUnsafeEntityIDs(t *testing.T) {
	desc := descriptor(formatter.DefaultSettings(), formatter.ImageItem{})
	desc.Entity = formatter.BasicEntity{Type: "node", ID: "My Post"}
	got := GalleryID(desc)
	if strings.ContainsAny(got, " ") || !strings.HasPrefix(got, "gallery-node-") {
		t.Fatalf("expected normalised gallery id, got %q", got)
	}
}
