package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/pathwalk/keypath"
)

// Parser decodes the section of data addressed by keys into target.
// An empty keys slice addresses the whole document.
type Parser interface {
	Parse(data []byte, target any, keys []string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Keys splits a section path written in dot/bracket notation. The empty path
// yields no keys.
func Keys(path string) []string {
	if path == "" {
		return nil
	}

	return keypath.Parse(path)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
// path selects a section in dot/bracket notation, for example "services.api" or "listeners[0]".
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	keys := Keys(path)

	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, keys)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
