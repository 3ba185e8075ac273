package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type pingMessage struct{}

func (pingMessage) Type() string { return "colorbox.test.ping" }

func (pingMessage) Validate() error { return nil }

type brokenMessage struct{}

func (brokenMessage) Type() string { return "colorbox.test.broken" }

func (brokenMessage) Validate() error { return errors.New("invalid") }

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), pingMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuits(t *testing.T) {
	called := false
	h := NewHandler[brokenMessage](func(ctx context.Context, msg brokenMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), brokenMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("handler ran despite validation failure")
	}
}

func TestHandlerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, pingMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("handler ran with a cancelled context")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		return errors.New("boom")
	})

	err := h.Execute(context.Background(), pingMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerKeepsCategorisedErrors(t *testing.T) {
	inner := goerrors.Wrap(errors.New("bad settings"), goerrors.CategoryValidation, "display settings invalid")
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		return inner
	})

	err := h.Execute(context.Background(), pingMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category to survive, got %v", err)
	}
}

func TestHandlerTimeout(t *testing.T) {
	var status TelemetryStatus
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
			return nil
		}
	},
		WithTimeout[pingMessage](10*time.Millisecond),
		WithTelemetry[pingMessage](func(_ context.Context, _ pingMessage, info TelemetryInfo) {
			status = info.Status
		}),
	)

	err := h.Execute(context.Background(), pingMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
	if status != TelemetryStatusContextError {
		t.Fatalf("expected context_error telemetry, got %q", status)
	}
}

func TestHandlerTelemetryOnSuccess(t *testing.T) {
	var got TelemetryInfo
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error { return nil },
		WithOperation[pingMessage]("ping"),
		WithTelemetry[pingMessage](func(_ context.Context, _ pingMessage, info TelemetryInfo) {
			got = info
		}),
	)

	if err := h.Execute(context.Background(), pingMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.Status != TelemetryStatusSuccess || got.Command != "colorbox.test.ping" || got.Operation != "ping" {
		t.Fatalf("unexpected telemetry %+v", got)
	}
}
