package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsStable(t *testing.T) {
	first := UUID("go-colorbox:display:node:article:field_image:full")
	second := UUID("  go-colorbox:display:node:article:field_image:full ")
	if first == uuid.Nil || first != second {
		t.Fatalf("expected stable non-nil uuid, got %s and %s", first, second)
	}
	if UUID("   ") != uuid.Nil {
		t.Fatalf("expected nil uuid for blank key")
	}
}

func TestDisplayUUID(t *testing.T) {
	a := DisplayUUID("node", "article", "field_image", "full")
	b := DisplayUUID(" Node", "ARTICLE", "field_image ", "full")
	if a != b {
		t.Fatalf("expected normalised keys to match, got %s and %s", a, b)
	}
	if a == DisplayUUID("node", "article", "field_image", "teaser") {
		t.Fatalf("expected view modes to produce different ids")
	}
}
