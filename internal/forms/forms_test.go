package forms

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestFormLookupAndVisibility(t *testing.T) {
	form := Form{Elements: []Element{
		{Name: "mode", Type: TypeSelect, Options: []Option{{Value: "a"}, {Value: "custom"}}},
		{Name: "custom", Type: TypeTextField, States: VisibleWhen("mode", "custom")},
		{Name: "help", Type: TypeFieldset, Children: []Element{{Name: "notice", Type: TypeMarkup, Markup: "hi"}}},
	}}

	if got := strings.Join(form.Names(), ","); got != "mode,custom,help" {
		t.Fatalf("unexpected names %q", got)
	}
	notice, ok := form.Element("notice")
	if !ok || notice.Markup != "hi" {
		t.Fatalf("expected nested element lookup")
	}
	if _, ok := form.Element("missing"); ok {
		t.Fatalf("expected missing element")
	}

	custom, _ := form.Element("custom")
	if custom.VisibleWith(map[string]string{"mode": "a"}) {
		t.Fatalf("expected hidden element")
	}
	if !custom.VisibleWith(map[string]string{"mode": "custom"}) {
		t.Fatalf("expected visible element")
	}
	mode, _ := form.Element("mode")
	if !mode.VisibleWith(nil) {
		t.Fatalf("elements without states are always visible")
	}
}

func TestHasOption(t *testing.T) {
	el := Element{EmptyOption: &Option{Value: "", Label: "None"}, Options: []Option{{Value: "large"}}}
	if !el.HasOption("") || !el.HasOption("large") || el.HasOption("small") {
		t.Fatalf("unexpected option membership")
	}
}

func TestElementJSONOmitsCallbacks(t *testing.T) {
	el := Element{Name: "gallery_custom", Type: TypeMachineName, MaxLength: 32, Exists: func(_ context.Context, _ string) bool { return true }}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "Exists") || !strings.Contains(string(data), `"max_length":32`) {
		t.Fatalf("unexpected json %s", data)
	}
}
