// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml. Documents are parsed into an
// AST and sections are located by walking it with a pathwalk.Walker whose
// Indexer understands mapping, sequence, anchor and tag nodes. The reached
// node is then decoded with yaml.NodeToValue.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var cfg Config
//	err := parser.Parse(data, &cfg, []string{"services", "api"})
//
// Key resolution:
//   - no keys -> unmarshal entire document
//   - mapping keys match the key's source text, quoted keys unquoted
//   - sequence entries match canonical decimal indices ("0", "1")
//   - a key that does not resolve fails with ErrPathNotFound naming the
//     walked prefix, for example "path not found: listeners[3]"
package yaml
