package unit

import (
	"fmt"
	"reflect"
)

// Predicate matches every value accepted by its guard.
type Predicate struct {
	name
	pred    func(v any) bool
	dump    DumpFunc
	restore RestoreFunc
}

// NewPredicate creates a Predicate transformer.
func NewPredicate(token, namespace string, pred func(v any) bool, dump DumpFunc, restore RestoreFunc) (*Predicate, error) {
	n, err := newName(token, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create predicate transformer: %w", err)
	}

	switch {
	case pred == nil:
		return nil, fmt.Errorf("failed to create predicate transformer %s: missing predicate", n.path)
	case dump == nil || restore == nil:
		return nil, fmt.Errorf("failed to create predicate transformer %s: missing dump or restore", n.path)
	}

	return &Predicate{name: n, pred: pred, dump: dump, restore: restore}, nil
}

func (p *Predicate) Variant() Variant           { return VariantPredicate }
func (p *Predicate) Class() reflect.Type        { return nil }
func (p *Predicate) Match(v any) bool           { return p.pred(v) }
func (p *Predicate) Dump(v any) (any, error)    { return p.dump(v) }
func (p *Predicate) Restore(v any) (any, error) { return p.restore(v) }
