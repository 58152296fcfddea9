package unit

import (
	"fmt"
	"reflect"
)

// Descriptor is the plain description of a Class or Predicate
// transformer.
type Descriptor struct {
	Token     string
	Namespace string
	// Class selects the Class variant.
	Class reflect.Type
	// Pred selects the Predicate variant when Class is nil.
	Pred    func(v any) bool
	Dump    DumpFunc
	Restore RestoreFunc
}

// Build turns the descriptor into a Transformer.
func (d Descriptor) Build() (Transformer, error) {
	switch {
	case d.Class != nil:
		return NewClassOf(d.Token, d.Namespace, d.Class, d.Dump, d.Restore)
	case d.Pred != nil:
		return NewPredicate(d.Token, d.Namespace, d.Pred, d.Dump, d.Restore)
	default:
		return nil, fmt.Errorf("%s: %w", JoinPath(d.Namespace, d.Token), ErrNoMatcher)
	}
}
