// Package composite implements the Composite Transformer: an immutable,
// ordered registry of unit transformers plus the walker that uses it to turn
// arbitrary Go values into plain trees and back.
//
// # Encoding
//
// Dump visits every node top-down:
//
//  1. Predicate and Equal transformers are tried in registry order; the
//     first match wins.
//  2. Values that are not plain containers are looked up by exact dynamic
//     type among the Class transformers.
//  3. Sequences (any slice or array) become []any.
//  4. Records (any map keyed by a string kind) become map[string]any.
//  5. Everything else is returned unchanged.
//
// A matched node is replaced by a single-entry tag map whose key is the
// prefix followed by the transformer path, and whose value is the encoded
// output of the transformer's Dump:
//
//	{"$geo.point": {"x": 1, "y": 2}}
//
// # Decoding
//
// Restore walks []any and map[string]any. A map with exactly one key that
// starts with the prefix and names a registered path is handed to that
// transformer after its value has been restored. Tag-shaped maps naming an
// unknown path are ordinary data. Restore works on a deep copy of the plain
// structure; RestoreUnsafe rewrites its argument in place.
//
// # Composition
//
// ExtendWith appends transformers and fails on any duplicate token or class.
// OverrideBy appends them too, but lets the later of two conflicting entries
// replace the earlier one in place.
//
// A Composite is never mutated after New returns, so it is safe for
// concurrent use. Cyclic values are not supported and never terminate.
package composite
