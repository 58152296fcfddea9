package composite

import (
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"type-transformer/unit"
)

// Spec is one registry entry as passed to New, ExtendWith and OverrideBy:
// a unit.Transformer, a unit.Descriptor (or pointer to one), or a
// *Composite whose transformers are taken in order.
type Spec any

// Composite is an immutable transformer registry and the walker using it.
type Composite struct {
	transformers []unit.Transformer
	// predicates holds the Predicate and Equal variants in registry order.
	predicates []unit.Transformer
	classes    map[reflect.Type]unit.Transformer
	paths      map[string]unit.Transformer
	options    Options
}

// New builds a Composite from specs. It fails if a spec is invalid or if
// two transformers share a (namespace, token) pair or a class.
func New(specs []Spec, opts ...Option) (*Composite, error) {
	ts, err := normalize(specs)
	if err != nil {
		return nil, err
	}

	return build(ts, DefaultOptions().apply(opts))
}

// Must is like New but panics on error. It is meant for package-level
// registries.
func Must(specs []Spec, opts ...Option) *Composite {
	c, err := New(specs, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Transformers returns the registry in order.
func (c *Composite) Transformers() []unit.Transformer {
	return slices.Clone(c.transformers)
}

// Options returns the configuration of c.
func (c *Composite) Options() Options {
	return c.options
}

// Lookup returns the transformer registered under path.
func (c *Composite) Lookup(path string) (unit.Transformer, bool) {
	t, ok := c.paths[path]
	return t, ok
}

// normalize turns specs into transformers, flattening nested composites.
func normalize(specs []Spec) ([]unit.Transformer, error) {
	out := make([]unit.Transformer, 0, len(specs))

	for i, spec := range specs {
		switch s := spec.(type) {
		case *Composite:
			if s == nil {
				return nil, &ConstructionError{Index: i, Cause: fmt.Errorf("%w: nil composite", ErrInvalidSpec)}
			}

			out = append(out, s.transformers...)
		case unit.Transformer:
			if isNilTransformer(s) {
				return nil, &ConstructionError{Index: i, Cause: fmt.Errorf("%w: nil %T", ErrInvalidSpec, s)}
			}

			out = append(out, s)
		case unit.Descriptor:
			t, err := s.Build()
			if err != nil {
				return nil, &ConstructionError{Index: i, Cause: err}
			}

			out = append(out, t)
		case *unit.Descriptor:
			if s == nil {
				return nil, &ConstructionError{Index: i, Cause: fmt.Errorf("%w: nil descriptor", ErrInvalidSpec)}
			}

			t, err := s.Build()
			if err != nil {
				return nil, &ConstructionError{Index: i, Cause: err}
			}

			out = append(out, t)
		default:
			return nil, &ConstructionError{Index: i, Cause: fmt.Errorf("%w: unsupported spec %T", ErrInvalidSpec, spec)}
		}
	}

	return out, nil
}

// isNilTransformer reports whether t holds a nil pointer, map, func or
// other nilable value behind a non-nil interface.
func isNilTransformer(t unit.Transformer) bool {
	rv := reflect.ValueOf(t)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// build validates ts and derives the lookup tables.
func build(ts []unit.Transformer, options Options) (*Composite, error) {
	if diags := validateConsistency(ts); diags.HasErrors() {
		return nil, &ConstructionError{Index: -1, Cause: fmt.Errorf("%w: %w", ErrInconsistent, diags.Error())}
	}

	c := &Composite{
		transformers: slices.Clone(ts),
		classes:      make(map[reflect.Type]unit.Transformer),
		paths:        make(map[string]unit.Transformer, len(ts)),
		options:      options,
	}

	for _, t := range c.transformers {
		if _, exists := c.paths[t.Path()]; !exists {
			c.paths[t.Path()] = t
		}

		if t.Variant() == unit.VariantClass {
			c.classes[t.Class()] = t
		} else {
			c.predicates = append(c.predicates, t)
		}
	}

	options.Logger.Debug("composite transformer built",
		zap.Int("transformers", len(c.transformers)),
		zap.Int("predicates", len(c.predicates)),
		zap.Int("classes", len(c.classes)),
		zap.String("prefix", options.Prefix))

	return c, nil
}
