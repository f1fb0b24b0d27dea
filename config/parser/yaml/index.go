package yaml

import (
	"strconv"

	"github.com/0xalexb/pathwalk"

	"github.com/goccy/go-yaml/ast"
)

// Indexer resolves walker keys against goccy/go-yaml AST nodes.
var Indexer pathwalk.Indexer = pathwalk.IndexFunc(Index) //nolint:gochecknoglobals // stateless adapter.

// Index looks key up in an AST node: mapping keys by their source text and
// sequence entries by decimal index. Document, anchor and tag wrappers are
// looked through. Aliases are not resolved.
func Index(container any, key string) (any, bool) {
	node, ok := container.(ast.Node)
	if !ok {
		return nil, false
	}

	switch typed := unwrap(node).(type) {
	case *ast.MappingNode:
		for _, entry := range typed.Values {
			if mappingKey(entry) == key {
				return entryValue(entry)
			}
		}
	case *ast.MappingValueNode:
		if mappingKey(typed) == key {
			return entryValue(typed)
		}
	case *ast.SequenceNode:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(typed.Values) || strconv.Itoa(i) != key {
			return nil, false
		}

		if typed.Values[i] == nil {
			return nil, false
		}

		return typed.Values[i], true
	}

	return nil, false
}

func unwrap(node ast.Node) ast.Node {
	for {
		switch typed := node.(type) {
		case *ast.DocumentNode:
			node = typed.Body
		case *ast.AnchorNode:
			node = typed.Value
		case *ast.TagNode:
			node = typed.Value
		default:
			return node
		}
	}
}

func mappingKey(entry *ast.MappingValueNode) string {
	if entry.Key == nil {
		return ""
	}

	key := unwrap(entry.Key)
	if key == nil {
		return ""
	}

	tok := key.GetToken()
	if tok == nil {
		return ""
	}

	return tok.Value
}

func entryValue(entry *ast.MappingValueNode) (any, bool) {
	if entry.Value == nil {
		return nil, false
	}

	return entry.Value, true
}
