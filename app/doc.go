// Package app wires pathwalk components into an Uber Fx container.
//
// NewApp installs a slog logger built from the logging package as the
// process default and supplies both the *slog.Logger and its
// logging.LoggerConfig to the container, so modules can depend on them.
package app
