// Package logger provides structured logging for ddproc.
//
// It wraps uber-go/zap and builds a logger from the application
// configuration. Debug level selects the zap development config (human
// timestamps), anything else the production config.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (colored levels, no stacktraces) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("archive fetched", zap.Int("objects", n))
package logger
