package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-colorbox/internal/logging"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// TelemetryStatus is the outcome class of an execution.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo describes one execution.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry is called after each execution.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// LogTelemetry emits the execution duration at debug level.
func LogTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	logger = logging.EnsureLogger(logger)
	return func(_ context.Context, _ T, info TelemetryInfo) {
		logging.WithFields(logger, info.Fields).Debug("command.execute.timing",
			"status", string(info.Status),
			"duration_ms", info.Duration.Milliseconds(),
		)
	}
}
