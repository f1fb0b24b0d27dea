package pathwalk

// Get walks root along path to its end and returns the value reached. Missing
// keys do not fail the walk; they make the result nil.
func Get(root any, path string, opts ...Option) (any, error) {
	walker, err := New(root, path, opts...)
	if err != nil {
		return nil, err
	}

	return walkToEnd(walker)
}

// GetKeys is Get for a pre-split path.
func GetKeys(root any, keys []string, opts ...Option) (any, error) {
	walker, err := NewFromKeys(root, keys, opts...)
	if err != nil {
		return nil, err
	}

	return walkToEnd(walker)
}

func walkToEnd(walker *Walker) (any, error) {
	for walker.HasNext() {
		err := walker.Next()
		if err != nil {
			return nil, err
		}
	}

	return walker.CurrentValue(), nil
}
