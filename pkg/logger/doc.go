// Package logger provides a structured logging interface for apodwall.
//
// It wraps zerolog with a small API:
// - Leveled logging (Debug, Info, Warn, Error)
// - Structured fields via WithField, WithFields and the *WithFields methods
// - Pretty console output on stderr, optionally mirrored to a file
// - A global logger with WithField/WithError shortcuts
//
// Basic Usage:
//
//	err := logger.Initialize(&cfg.Logging)
//
//	log := logger.WithField("run_id", runID)
//	log.Debug("fetching page")
//	logger.WithError(err).Error("image download failed")
//
// Tests use NewNopLogger to discard output or NewTestLogger to capture and
// assert on messages.
package logger
