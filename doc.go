// Package pathwalk provides Walker, a stateful cursor that follows a key path
// through a nested structure one step at a time, forwards and backwards.
//
// A path is either a dot/bracket notation string such as "spec.containers[0].image"
// (parsed with keypath.Parse) or a pre-split key slice:
//
//	walker, err := pathwalk.New(doc, "spec.containers[0].image")
//	if err != nil {
//	    return err
//	}
//	for walker.HasNext() {
//	    _ = walker.Next()
//	    key, _ := walker.CurrentKey()
//	    fmt.Println(key, walker.CurrentValue())
//	}
//
// Keys are resolved by an Indexer. The default one understands decoded JSON and
// YAML shapes (map[string]any, []any) and, through reflection, other maps with
// string keys, slices, arrays and structs. A key that cannot be resolved yields
// a nil value; it is not an error.
//
// All failures are *Error values with a fixed message and a Kind:
// ErrObjectRequired and ErrPathRequired at construction, ErrNoNextStep and
// ErrNoPreviousStep when stepping out of bounds. A failed call never changes
// the Walker.
package pathwalk
