package pathwalk

import (
	"reflect"
	"slices"

	"github.com/0xalexb/pathwalk/keypath"
)

// Walker is a cursor over a nested structure that follows a fixed path one
// key at a time, in both directions.
//
// A Walker keeps the keys it has consumed and the value reached after each of
// them, so stepping back never re-resolves from the root. Lookups are live: a
// structure mutated between steps is seen by the next lookup. Walkers are not
// safe for concurrent use.
type Walker struct {
	path    []string
	visited []string
	// values[0] is the root; values[i] is the value reached by visited[i-1].
	values  []any
	indexer Indexer
}

// New creates a Walker over root following path, given in dot/bracket
// notation (see keypath.Parse).
func New(root any, path string, opts ...Option) (*Walker, error) {
	if isNil(root) {
		return nil, ErrObjectRequired
	}

	if path == "" {
		return nil, ErrPathRequired
	}

	return newWalker(root, keypath.Parse(path), opts)
}

// NewFromKeys creates a Walker over root following keys as given, without any
// parsing. The keys are copied.
func NewFromKeys(root any, keys []string, opts ...Option) (*Walker, error) {
	if isNil(root) {
		return nil, ErrObjectRequired
	}

	if len(keys) == 0 {
		return nil, ErrPathRequired
	}

	return newWalker(root, slices.Clone(keys), opts)
}

func newWalker(root any, path []string, opts []Option) (*Walker, error) {
	options := Options{Indexer: DefaultIndexer}

	for _, apply := range opts {
		apply(&options)
	}

	if options.Indexer == nil {
		options.Indexer = DefaultIndexer
	}

	values := make([]any, 1, len(path)+1)
	values[0] = root

	return &Walker{
		path:    path,
		visited: make([]string, 0, len(path)),
		values:  values,
		indexer: options.Indexer,
	}, nil
}

// CurrentKey returns the last consumed key. ok is false at depth 0.
func (w *Walker) CurrentKey() (key string, ok bool) {
	if len(w.visited) == 0 {
		return "", false
	}

	return w.visited[len(w.visited)-1], true
}

// CurrentPath returns a copy of the consumed keys.
func (w *Walker) CurrentPath() []string {
	return append([]string{}, w.visited...)
}

// CurrentValue returns the value at the current position, the root at depth 0.
func (w *Walker) CurrentValue() any {
	return w.values[len(w.values)-1]
}

// CurrentDepth returns the number of consumed keys.
func (w *Walker) CurrentDepth() int {
	return len(w.visited)
}

// RemainingPath returns a copy of the keys not consumed yet.
func (w *Walker) RemainingPath() []string {
	return append([]string{}, w.path[len(w.visited):]...)
}

// Path returns a copy of the full path.
func (w *Walker) Path() []string {
	return slices.Clone(w.path)
}

// HasNext reports whether Next can advance.
func (w *Walker) HasNext() bool {
	return len(w.visited) < len(w.path)
}

// HasPrevious reports whether Previous can step back.
func (w *Walker) HasPrevious() bool {
	return len(w.visited) > 0
}

// NextKey returns the key Next would consume.
func (w *Walker) NextKey() (string, error) {
	if !w.HasNext() {
		return "", ErrNoNextStep
	}

	return w.path[len(w.visited)], nil
}

// NextValue looks up NextKey in the current value without moving. A key
// missing from the structure yields nil.
func (w *Walker) NextValue() (any, error) {
	key, err := w.NextKey()
	if err != nil {
		return nil, err
	}

	return w.lookup(w.CurrentValue(), key), nil
}

// PreviousKey returns the key two positions before the current one, that is
// the key that led to PreviousValue. At depth 1 no such key exists and ok is
// false.
func (w *Walker) PreviousKey() (key string, ok bool, err error) {
	if !w.HasPrevious() {
		return "", false, ErrNoPreviousStep
	}

	i := len(w.visited) - 2
	if i < 0 {
		return "", false, nil
	}

	return w.path[i], true, nil
}

// PreviousValue returns the value one level above the current one.
func (w *Walker) PreviousValue() (any, error) {
	if !w.HasPrevious() {
		return nil, ErrNoPreviousStep
	}

	return w.values[len(w.values)-2], nil
}

// Next consumes the next key and moves to the value it leads to.
func (w *Walker) Next() error {
	if !w.HasNext() {
		return ErrNoNextStep
	}

	w.step(true)

	return nil
}

// Previous moves back to the value above the current one.
func (w *Walker) Previous() error {
	if !w.HasPrevious() {
		return ErrNoPreviousStep
	}

	w.step(false)

	return nil
}

// step pushes or pops one (key, value) pair. Callers check bounds first.
func (w *Walker) step(forward bool) {
	if forward {
		key := w.path[len(w.visited)]
		value := w.lookup(w.CurrentValue(), key)

		w.visited = append(w.visited, key)
		w.values = append(w.values, value)

		return
	}

	w.visited = w.visited[:len(w.visited)-1]
	w.values[len(w.values)-1] = nil
	w.values = w.values[:len(w.values)-1]
}

func (w *Walker) lookup(container any, key string) any {
	value, found := w.indexer.Index(container, key)
	if !found {
		return nil
	}

	return value
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
