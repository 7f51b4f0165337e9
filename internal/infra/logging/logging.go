package logging

import (
	"log/slog"

	"github.com/ormanli/rewards/internal/app/rewards"
)

// Setup setups logger configuration.
func Setup(cfg rewards.Config) {
	if cfg.InitDebug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Initializing debug level logging")
	}
}
