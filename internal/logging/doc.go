// Package logging assembles the structured slog loggers used by the CLI.
//
// It owns the console and JSON handlers, level parsing, and the optional
// rotating log file, and exposes context helpers so runner and minting code
// tag every line with the run ID, case id and job name. A no-op logger is
// provided for tests and for wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
