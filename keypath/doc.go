// Package keypath converts key paths written in dot and bracket notation into
// ordered key sequences.
//
// Both notations may be mixed freely:
//
//	"a.b.c"        -> [a b c]
//	"a[0].b"       -> [a 0 b]
//	"a['b'].c"     -> [a b c]
//	`[0]["x"]`     -> [0 x]
//
// Quote characters inside brackets are stripped, never unescaped, so keys that
// themselves contain '.', '[', ']' or quotes cannot be expressed reliably.
package keypath
