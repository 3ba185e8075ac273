package imagestyles

import (
	"errors"
	"testing"
)

func TestMemoryRegistry(t *testing.T) {
	r := NewMemoryRegistry(Defaults()...)

	if err := r.Register(Style{ID: "wide"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(Style{ID: "wide"}); !errors.Is(err, ErrStyleExists) {
		t.Fatalf("expected ErrStyleExists, got %v", err)
	}
	if err := r.Register(Style{ID: " "}); !errors.Is(err, ErrStyleIDRequired) {
		t.Fatalf("expected ErrStyleIDRequired, got %v", err)
	}

	styles := r.Styles()
	if len(styles) != 4 || styles[0].ID != "thumbnail" || styles[3].Label != "wide" {
		t.Fatalf("unexpected styles %v", styles)
	}

	if style, ok := r.Lookup("medium"); !ok || style.Label != "Medium (220×220)" {
		t.Fatalf("expected medium lookup, got %v %v", style, ok)
	}
	r.Remove("medium")
	if _, ok := r.Lookup("medium"); ok {
		t.Fatalf("expected medium to be removed")
	}
	if _, ok := r.Lookup(""); ok {
		t.Fatalf("empty id must not resolve")
	}
	if len(r.Styles()) != 3 {
		t.Fatalf("expected three styles after removal")
	}
}

func TestURL(t *testing.T) {
	cases := []struct {
		style string
		uri   string
		want  string
	}{
		{style: "", uri: "public://photos/a.jpg", want: "public://photos/a.jpg"},
		{style: "large", uri: "public://photos/a.jpg", want: "styles/large/public/photos/a.jpg"},
		{style: "large", uri: "photos/a.jpg", want: "styles/large/public/photos/a.jpg"},
		{style: "thumbnail", uri: "private://b.png", want: "styles/thumbnail/private/b.png"},
		{style: "thumbnail", uri: "https://cdn.example.com/c.png", want: "https://cdn.example.com/c.png"},
	}
	for _, tc := range cases {
		if got := URL(tc.style, tc.uri); got != tc.want {
			t.Fatalf("URL(%q, %q): expected %q, got %q", tc.style, tc.uri, tc.want, got)
		}
	}
}
