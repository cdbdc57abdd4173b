// Package log provides snip's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by Go's standard
// library slog via a custom handler that routes records through a
// formatter/output pipeline, so the CLI keeps one consistent diagnostic
// format on stderr regardless of which layer emitted the record.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("run"))
//	l.Info("processing", log.Str("file", name))
package log
