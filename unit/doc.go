// Package unit provides Unit Transformers: named, optionally namespaced
// rules that recognize one kind of value and convert it to and from a plain
// representation.
//
// # Variants
//
//   - Class: matches values whose dynamic type is exactly the registered
//     type. Named types never match their underlying type, and an interface
//     type never matches its implementations.
//   - Predicate: matches values for which a guard function returns true.
//   - Equal: matches one captured sentinel value. It dumps to nil and always
//     restores to the captured value.
//
// # Paths
//
// A transformer is identified by its Path: "namespace.token", or just
// "token" in the default (empty) namespace. Tokens are identifiers
// ([A-Za-z_][A-Za-z0-9_-]*); a namespace is one or more tokens joined by
// dots.
//
// # Descriptors
//
// Descriptor is the plain form of a Class or Predicate transformer. Build
// picks the variant by the field that is set: Class wins over Pred, and a
// descriptor with neither fails with ErrNoMatcher.
package unit
