package lightbox_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/goliatone/go-colorbox/internal/i18n"
	"github.com/goliatone/go-colorbox/internal/lightbox"
	"github.com/goliatone/go-colorbox/internal/siteconfig"
)

func mustStore(t *testing.T, values map[string]any) *siteconfig.Store {
	t.Helper()
	store, err := siteconfig.FromMap(values)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return store
}

func TestBuildDefaultModeIgnoresCustomValues(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]any
		detect bool
		width  string
	}{
		{name: "shipped defaults", detect: true, width: "480px"},
		{
			name: "custom values present but inactive",
			values: map[string]any{
				"custom":   map[string]any{"activate": false, "opacity": "0.3", "transition_type": "fade"},
				"advanced": map[string]any{"mobile_detect": false, "mobile_device_width": "320px"},
			},
			detect: false,
			width:  "320px",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			builder := lightbox.NewBuilder(mustStore(t, tc.values), nil)
			got, mode := builder.Build("en")
			if mode != lightbox.ModeDefault {
				t.Fatalf("expected default mode, got %s", mode)
			}

			want := lightbox.Settings{
				"opacity":           "0.85",
				"current":           "{current} of {total}",
				"previous":          "« Prev",
				"next":              "Next »",
				"close":             "Close",
				"maxWidth":          "98%",
				"maxHeight":         "98%",
				"fixed":             true,
				"mobiledetect":      tc.detect,
				"mobiledevicewidth": tc.width,
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("unexpected settings\nwant %#v\ngot  %#v", want, got)
			}
		})
	}
}

func TestBuildDefaultModeTranslatesStrings(t *testing.T) {
	fx, err := i18n.DefaultCatalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	builder := lightbox.NewBuilder(siteconfig.New(), i18n.NewTranslator(fx))

	got, _ := builder.Build("sv")
	if got["close"] != "Stäng" || got["current"] != "{current} av {total}" {
		t.Fatalf("expected swedish strings, got close=%v current=%v", got["close"], got["current"])
	}
}

func TestBuildCustomMode(t *testing.T) {
	store := mustStore(t, map[string]any{
		"custom": map[string]any{
			"activate":         1,
			"transition_type":  "fade",
			"transition_speed": "500",
			"opacity":          "0.5",
			"overlayclose":     0,
			"slideshow":        map[string]any{"slideshow": 1, "speed": 4000},
		},
	})

	got, mode := lightbox.NewBuilder(store, nil).Build("en")
	if mode != lightbox.ModeCustom {
		t.Fatalf("expected custom mode, got %s", mode)
	}

	checks := map[string]any{
		"transition":        "fade",
		"speed":             500,
		"opacity":           "0.5",
		"overlayClose":      false,
		"slideshow":         true,
		"slideshowAuto":     true,
		"slideshowSpeed":    4000,
		"slideshowStart":    "start slideshow",
		"initialWidth":      "300",
		"initialHeight":     "250",
		"scrolling":         true,
		"mobiledetect":      true,
		"mobiledevicewidth": "480px",
	}
	for key, want := range checks {
		if got[key] != want {
			t.Fatalf("%s: expected %#v, got %#v", key, want, got[key])
		}
	}
	if len(got) != 21 {
		t.Fatalf("expected 21 custom keys, got %d", len(got))
	}
}

func TestChainLastWriterWins(t *testing.T) {
	base := lightbox.Settings{"opacity": "0.85", "fixed": true}

	chain := lightbox.Chain{
		lightbox.Override(lightbox.Settings{"opacity": "0.5", "speed": 100}),
		nil,
		lightbox.ForceStyle("plain"),
		lightbox.AlterFunc(func(_ context.Context, settings lightbox.Settings, style string) (lightbox.Settings, string) {
			settings["opacity"] = "0.1"
			return settings, style + "-x"
		}),
	}

	got, style := chain.Alter(context.Background(), base, "default")
	if style != "plain-x" {
		t.Fatalf("expected style plain-x, got %q", style)
	}
	if got["opacity"] != "0.1" || got["speed"] != 100 || got["fixed"] != true {
		t.Fatalf("unexpected altered settings %#v", got)
	}
	if base["opacity"] != "0.85" || len(base) != 2 {
		t.Fatalf("input settings must not change, got %#v", base)
	}
}

func TestChainNilResultKeepsPrevious(t *testing.T) {
	chain := lightbox.Chain{
		lightbox.AlterFunc(func(_ context.Context, _ lightbox.Settings, style string) (lightbox.Settings, string) {
			return nil, style
		}),
	}
	got, style := chain.Alter(context.Background(), lightbox.Settings{"fixed": true}, "none")
	if got["fixed"] != true || style != "none" {
		t.Fatalf("expected unchanged settings, got %#v %q", got, style)
	}
}
