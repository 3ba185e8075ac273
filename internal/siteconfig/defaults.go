package siteconfig

import "strings"

// DefaultPages lists the paths on which the lightbox is not loaded by default.
var DefaultPages = []string{
	"admin*",
	"imagebrowser*",
	"img_assist*",
	"imce*",
	"node/add/*",
	"node/*/edit",
	"print/*",
	"printpdf/*",
	"system/ajax",
	"system/ajax/*",
}

// Defaults returns the shipped colorbox settings document.
func Defaults() map[string]any {
	return map[string]any{
		"custom": map[string]any{
			"style":            "default",
			"activate":         false,
			"transition_type":  "elastic",
			"transition_speed": 350,
			"opacity":          "0.85",
			"text_current":     "{current} of {total}",
			"text_previous":    "« Prev",
			"text_next":        "Next »",
			"text_close":       "Close",
			"overlayclose":     true,
			"maxwidth":         "98%",
			"maxheight":        "98%",
			"initialwidth":     "300",
			"initialheight":    "250",
			"fixed":            true,
			"scrolling":        true,
			"slideshow": map[string]any{
				"slideshow":  false,
				"auto":       true,
				"speed":      2500,
				"text_start": "start slideshow",
				"text_stop":  "stop slideshow",
			},
		},
		"advanced": map[string]any{
			"mobile_detect":       true,
			"mobile_device_width": "480px",
			"caption_trim":        false,
			"caption_trim_length": 75,
			"compression_type":    "minified",
			"visibility":          VisibilityExceptListed,
			"pages":               strings.Join(DefaultPages, "\n"),
		},
		"extra": map[string]any{
			"load":   false,
			"inline": false,
		},
	}
}
