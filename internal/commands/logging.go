package commands

import (
	"strings"

	"github.com/goliatone/go-colorbox/internal/logging"
	"github.com/goliatone/go-colorbox/pkg/interfaces"
)

const loggerRoot = "colorbox.commands"

// Logger returns the module logger for a command group, tagged so command
// entries can be filtered apart from request traffic.
func Logger(provider interfaces.LoggerProvider, group string) interfaces.Logger {
	name := strings.TrimSpace(group)
	if name == "" {
		name = "core"
	}
	return logging.WithFields(logging.ModuleLogger(provider, loggerRoot+"."+name), map[string]any{
		"component":     "command",
		"command_group": name,
	})
}
