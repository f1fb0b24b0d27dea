// Package config loads typed configuration sections for the pathwalk binary.
//
// The package uses an interface-based design with four extension points:
//   - Parser: decodes the section addressed by a key sequence into a struct
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Section Paths
//
// Provider accepts a section path in the same dot/bracket notation used by
// pathwalk walkers and splits it with keypath.Parse:
//
//	"shell"                 -> config["shell"]
//	"services.api"          -> config["services"]["api"]
//	"listeners[0].tls"      -> config["listeners"][0]["tls"]
//	""                      -> entire document
//
// The YAML parser in config/parser/yaml resolves the keys by walking the
// document AST with a pathwalk.Walker.
//
// # Example
//
//	type ShellConfig struct {
//	    Prompt string `yaml:"prompt"`
//	}
//
//	provider := config.Provider(&ShellConfig{}, "shell")
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
package config
