package displayscmd_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	displayscmd "github.com/goliatone/go-colorbox/internal/commands/displays"
	"github.com/goliatone/go-colorbox/internal/displays"
	"github.com/goliatone/go-colorbox/internal/formatter"
	"github.com/goliatone/go-colorbox/internal/imagestyles"
)

func newService() displays.Service {
	f := formatter.New(imagestyles.NewMemoryRegistry(imagestyles.Defaults()...))
	return displays.NewService(displays.NewMemoryRepository(), f)
}

func saveCommand(field, gallery string) displayscmd.SaveDisplayCommand {
	settings := formatter.DefaultSettings()
	if gallery != "" {
		settings.Gallery = formatter.GalleryCustom
		settings.GalleryCustom = gallery
	}
	return displayscmd.SaveDisplayCommand{
		EntityType: "node",
		Bundle:     "article",
		Field:      field,
		ViewMode:   "full",
		Settings:   settings,
	}
}

func TestSaveDisplayCommandValidate(t *testing.T) {
	cases := []struct {
		name    string
		cmd     displayscmd.SaveDisplayCommand
		wantErr bool
	}{
		{name: "valid", cmd: saveCommand("field_image", "")},
		{name: "valid custom", cmd: saveCommand("field_image", "holiday_2024")},
		{name: "missing field", cmd: saveCommand("", ""), wantErr: true},
		{name: "bad gallery", cmd: saveCommand("field_image", "Holiday Pics"), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSaveDisplayHandlerPersists(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	handler := displayscmd.NewSaveDisplayHandler(svc, nil)

	if err := handler.Execute(ctx, saveCommand("field_image", "holiday")); err != nil {
		t.Fatalf("execute: %v", err)
	}
	record, err := svc.Get(ctx, displays.Key{EntityType: "node", Bundle: "article", Field: "field_image", ViewMode: "full"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record.GalleryCustom != "holiday" {
		t.Fatalf("expected stored gallery, got %q", record.GalleryCustom)
	}
}

func TestSaveDisplayHandlerRejectsInvalidPayload(t *testing.T) {
	handler := displayscmd.NewSaveDisplayHandler(newService(), nil)

	err := handler.Execute(context.Background(), saveCommand("", ""))
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestSaveDisplayHandlerRejectsTakenGallery(t *testing.T) {
	ctx := context.Background()
	handler := displayscmd.NewSaveDisplayHandler(newService(), nil)

	if err := handler.Execute(ctx, saveCommand("field_image", "holiday")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	err := handler.Execute(ctx, saveCommand("field_banner", "holiday"))
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category for taken gallery, got %v", err)
	}
	if err := handler.Execute(ctx, saveCommand("field_image", "holiday")); err != nil {
		t.Fatalf("resaving the owner should pass: %v", err)
	}
}

func TestDeleteDisplayHandler(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	save := displayscmd.NewSaveDisplayHandler(svc, nil)
	del := displayscmd.NewDeleteDisplayHandler(svc, nil)

	if err := save.Execute(ctx, saveCommand("field_image", "")); err != nil {
		t.Fatalf("save: %v", err)
	}
	cmd := displayscmd.DeleteDisplayCommand{EntityType: "node", Bundle: "article", Field: "field_image", ViewMode: "full"}
	if err := del.Execute(ctx, cmd); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := del.Execute(ctx, cmd); !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command error for missing display, got %v", err)
	}

	cmd.IgnoreMissing = true
	if err := del.Execute(ctx, cmd); err != nil {
		t.Fatalf("expected missing display to be ignored, got %v", err)
	}
}

func TestDeleteDisplayCommandValidate(t *testing.T) {
	err := displayscmd.DeleteDisplayCommand{EntityType: "node"}.Validate()
	if err == nil {
		t.Fatal("expected validation error for incomplete key")
	}
}
