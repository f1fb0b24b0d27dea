package yaml

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/0xalexb/pathwalk"
	"github.com/0xalexb/pathwalk/keypath"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNoDocument is returned when the input holds no YAML document.
var ErrNoDocument = errors.New("no document")

// Parser implements config.Parser interface for YAML data.
// Sections are located by walking the document AST with a pathwalk.Walker.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the section of data addressed by keys into target.
// No keys decodes the entire document.
func (p *Parser) Parse(data []byte, target any, keys []string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if len(keys) == 0 {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	root, err := p.ParseDocument(data)
	if err != nil {
		return err
	}

	node, err := Lookup(root, keys)
	if err != nil {
		return err
	}

	err = yaml.NodeToValue(node, target)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", keypath.Format(keys), err)
	}

	return nil
}

// ParseDocument parses data and returns the body of its first document.
func (p *Parser) ParseDocument(data []byte) (ast.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if len(file.Docs) == 0 || file.Docs[0] == nil || file.Docs[0].Body == nil {
		return nil, ErrNoDocument
	}

	return file.Docs[0].Body, nil
}

// Lookup walks root along keys and returns the node reached. The first key
// that does not resolve is reported with ErrPathNotFound.
func Lookup(root ast.Node, keys []string) (ast.Node, error) {
	walker, err := pathwalk.NewFromKeys(root, keys, pathwalk.WithIndexer(Indexer))
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", keypath.Format(keys), err)
	}

	for walker.HasNext() {
		err = walker.Next()
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", keypath.Format(keys), err)
		}

		if walker.CurrentValue() == nil {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, keypath.Format(walker.CurrentPath()))
		}
	}

	node, ok := walker.CurrentValue().(ast.Node)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, keypath.Format(keys))
	}

	slog.Debug("yaml section resolved",
		slog.String("path", keypath.Format(keys)),
		slog.String("type", node.Type().String()),
	)

	return node, nil
}

// Render formats a walked value for display. AST nodes print as YAML source,
// other values are marshaled.
func Render(value any) string {
	if node, ok := value.(ast.Node); ok {
		return node.String()
	}

	out, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}

	return strings.TrimSuffix(string(out), "\n")
}
