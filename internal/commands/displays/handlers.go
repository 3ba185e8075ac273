package displayscmd

import (
	"context"

	"github.com/goliatone/go-colorbox/internal/commands"
	"github.com/goliatone/go-colorbox/internal/displays"
	"github.com/goliatone/go-colorbox/internal/logging"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

// SaveDisplayHandler persists display settings through the displays service.
type SaveDisplayHandler struct {
	inner *commands.Handler[SaveDisplayCommand]
}

// NewSaveDisplayHandler wires the handler to service.
func NewSaveDisplayHandler(service displays.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SaveDisplayCommand]) *SaveDisplayHandler {
	logger = logging.EnsureLogger(logger)

	exec := func(ctx context.Context, msg SaveDisplayCommand) error {
		record, err := service.Save(ctx, displays.SaveInput{Key: msg.key(), Settings: msg.Settings})
		if err != nil {
			return err
		}
		logging.WithFields(logger, map[string]any{
			"display": record.DisplayKey,
			"gallery": string(record.Settings.Gallery),
		}).Info("colorbox.command.display.saved")
		return nil
	}

	handlerOpts := []commands.HandlerOption[SaveDisplayCommand]{
		commands.WithLogger[SaveDisplayCommand](logger),
		commands.WithOperation[SaveDisplayCommand]("display.save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SaveDisplayHandler{inner: commands.NewHandler[SaveDisplayCommand](exec, handlerOpts...)}
}

// Execute satisfies command.Commander[SaveDisplayCommand].
func (h *SaveDisplayHandler) Execute(ctx context.Context, msg SaveDisplayCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteDisplayHandler removes display settings.
type DeleteDisplayHandler struct {
	inner *commands.Handler[DeleteDisplayCommand]
}

// NewDeleteDisplayHandler wires the handler to service.
func NewDeleteDisplayHandler(service displays.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteDisplayCommand]) *DeleteDisplayHandler {
	logger = logging.EnsureLogger(logger)

	exec := func(ctx context.Context, msg DeleteDisplayCommand) error {
		key := msg.key()
		entry := logging.WithFields(logger, map[string]any{"display": key.String()})
		if err := service.Delete(ctx, key); err != nil {
			if msg.IgnoreMissing && displays.IsNotFound(err) {
				entry.Debug("colorbox.command.display.delete_missing")
				return nil
			}
			return err
		}
		entry.Info("colorbox.command.display.deleted")
		return nil
	}

	handlerOpts := []commands.HandlerOption[DeleteDisplayCommand]{
		commands.WithLogger[DeleteDisplayCommand](logger),
		commands.WithOperation[DeleteDisplayCommand]("display.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteDisplayHandler{inner: commands.NewHandler[DeleteDisplayCommand](exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DeleteDisplayCommand].
func (h *DeleteDisplayHandler) Execute(ctx context.Context, msg DeleteDisplayCommand) error {
	return h.inner.Execute(ctx, msg)
}
