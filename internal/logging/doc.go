// Package logging assembles the structured slog loggers used across
// Epitizer.
//
// It owns the configurable console/JSON handlers and centralizes level and
// output plumbing, and it exposes context helpers so conversion code can tag
// log lines with per-request correlation IDs. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
