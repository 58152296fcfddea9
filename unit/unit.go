package unit

import (
	"reflect"

	"type-transformer/internal/common"
)

// Variant selects how a Transformer recognizes values.
type Variant int

const (
	VariantClass Variant = iota + 1
	VariantPredicate
	VariantEqual
)

// String returns a human-readable variant name.
func (v Variant) String() string {
	switch v {
	case VariantClass:
		return "class"
	case VariantPredicate:
		return "predicate"
	case VariantEqual:
		return "equal"
	default:
		return common.UnknownStr
	}
}

// Transformer is the contract between a unit rule and the composite walker.
type Transformer interface {
	Token() string
	// Namespace returns "" for the default namespace.
	Namespace() string
	Path() string
	Variant() Variant
	// Class returns the exact type matched by a VariantClass transformer,
	// nil for every other variant.
	Class() reflect.Type
	Match(v any) bool
	// Dump returns the plain representation of v. The result is encoded
	// recursively by the caller.
	Dump(v any) (any, error)
	// Restore receives the already restored inner value.
	Restore(v any) (any, error)
}

// DumpFunc converts a matched value to its plain form.
type DumpFunc func(v any) (any, error)

// RestoreFunc converts a plain form back to the original value.
type RestoreFunc func(v any) (any, error)

// name holds the identity shared by all variants.
type name struct {
	token     string
	namespace string
	path      string
}

func newName(token, namespace string) (name, error) {
	if err := validateName(token, namespace); err != nil {
		return name{}, err
	}

	return name{token: token, namespace: namespace, path: JoinPath(namespace, token)}, nil
}

func (n name) Token() string     { return n.token }
func (n name) Namespace() string { return n.namespace }
func (n name) Path() string      { return n.path }

// JoinPath builds a transformer path from a namespace and a token.
func JoinPath(namespace, token string) string {
	if namespace == "" {
		return token
	}

	return namespace + "." + token
}

// Must panics if err is non-nil and returns t otherwise.
func Must[T Transformer](t T, err error) T {
	if err != nil {
		panic(err)
	}

	return t
}
