// Package main is the entry point for the Package Express shipping calculator.
// It runs one interactive quote session on stdin/stdout.
//
// 12-Factor App compilance:
//   - III. Config: Configuration via environment variables
//   - XI. Logs: Structured logging to stderr
//
// Usage:
//
//	go run ./cmd/shipcalc
//	go run ./cmd/shipcalc version
//
// Environment Variables:
//
//	SHIPCALC_ENVIRONMENT - Deployment environment (development, production)
//	SHIPCALC_LOG_LEVEL   - Minimum log level (default: warn)
//	SHIPCALC_LOG_FORMAT  - Log encoder, json or console (default: json)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/burakkgenccc/package-express/internal/application/port"
	"github.com/burakkgenccc/package-express/internal/infrastructure/config"
	"github.com/burakkgenccc/package-express/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log := logger.MustNew(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		Development: cfg.IsDevelopment(),
	}).Named(cfg.App.Name)
	defer log.Sync()

	log.Debug("Starting shipping calculator",
		"version", version,
		"environment", cfg.App.Environment,
	)

	root := newRootCmd(&loggerAdapter{log})
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ============================================================================
// Adapters to implement port interfaces
// ============================================================================

// loggerAdapter adapts the logger.Logger to the port.Logger interface.
type loggerAdapter struct {
	*logger.Logger
}

// With implements port.Logger.
func (l *loggerAdapter) With(keysAndValues ...any) port.Logger {
	return &loggerAdapter{l.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (l *loggerAdapter) WithContext(ctx context.Context) port.Logger {
	return &loggerAdapter{l.Logger.WithContext(ctx)}
}
