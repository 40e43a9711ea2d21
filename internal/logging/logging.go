// Package logging builds the hclog logger used by the algokit CLI.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/algokit/internal/config"
)

// Name is the root logger name.
const Name = "algokit"

// New returns a logger writing to output at the level named in cfg.
// An unknown level falls back to info.
func New(cfg config.Log, output io.Writer) hclog.Logger {
	return hclog.New(makeLoggerOptions(cfg, output))
}

func makeLoggerOptions(cfg config.Log, output io.Writer) *hclog.LoggerOptions {
	level := hclog.LevelFromString(cfg.Level)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return &hclog.LoggerOptions{
		Name:       Name,
		Output:     output,
		Level:      level,
		JSONFormat: cfg.JSON,
	}
}
