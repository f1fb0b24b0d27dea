package pathwalk

import (
	"reflect"
	"strconv"
	"strings"
)

// Indexer looks up a single key in a container. found is false when the
// container does not hold the key or cannot be indexed at all.
type Indexer interface {
	Index(container any, key string) (value any, found bool)
}

// IndexFunc adapts a plain function to the Indexer interface.
type IndexFunc func(container any, key string) (any, bool)

// Index calls f(container, key).
func (f IndexFunc) Index(container any, key string) (any, bool) {
	return f(container, key)
}

// DefaultIndexer is the Indexer used when no WithIndexer option is given.
var DefaultIndexer Indexer = IndexFunc(Index) //nolint:gochecknoglobals // stateless adapter.

// Index looks key up in the usual decoded-document shapes and falls back to
// reflection for other maps with string keys, slices, arrays and structs.
// Sequence keys must be canonical non-negative decimal indices ("0", "12").
// Struct fields are matched by yaml tag, json tag, then field name.
func Index(container any, key string) (any, bool) {
	switch typed := container.(type) {
	case nil:
		return nil, false
	case map[string]any:
		value, found := typed[key]

		return value, found
	case []any:
		i, ok := parseIndex(key, len(typed))
		if !ok {
			return nil, false
		}

		return typed[i], true
	case map[string]string:
		value, found := typed[key]

		return value, found
	case []string:
		i, ok := parseIndex(key, len(typed))
		if !ok {
			return nil, false
		}

		return typed[i], true
	case map[any]any:
		value, found := typed[key]

		return value, found
	}

	return indexValue(reflect.ValueOf(container), key)
}

func indexValue(value reflect.Value, key string) (any, bool) {
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil, false
		}

		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Map:
		keyType := value.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}

		elem := value.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !elem.IsValid() {
			return nil, false
		}

		return elem.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := parseIndex(key, value.Len())
		if !ok {
			return nil, false
		}

		return value.Index(i).Interface(), true
	case reflect.Struct:
		return structField(value, key)
	default:
		return nil, false
	}
}

func structField(value reflect.Value, key string) (any, bool) {
	structType := value.Type()

	for _, tagName := range []string{"yaml", "json"} {
		for i := range structType.NumField() {
			field := structType.Field(i)
			if !field.IsExported() {
				continue
			}

			name, _, _ := strings.Cut(field.Tag.Get(tagName), ",")
			if name != "" && name != "-" && name == key {
				return value.Field(i).Interface(), true
			}
		}
	}

	field, ok := structType.FieldByName(key)
	if !ok || !field.IsExported() {
		return nil, false
	}

	fieldValue, err := value.FieldByIndexErr(field.Index)
	if err != nil {
		return nil, false
	}

	return fieldValue.Interface(), true
}

func parseIndex(key string, length int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= length || strconv.Itoa(i) != key {
		return 0, false
	}

	return i, true
}
