// Package logging builds the structured slog loggers used by the pathwalk
// binary and supplied to the Fx container by package app.
//
// Output is JSON by default; the text format is meant for interactive
// sessions where log lines share the terminal with shell output.
package logging
