package composite

import (
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"type-transformer/internal/diagnostic"
	"type-transformer/unit"
)

// WithOptions returns a Composite with the same registry and the given
// options applied on top of those of c.
func (c *Composite) WithOptions(opts ...Option) (*Composite, error) {
	return build(c.transformers, c.options.apply(opts))
}

// ExtendWith returns a Composite whose registry is c's transformers followed
// by specs. Any duplicate token or class in the combined registry is an
// error; nothing is dropped silently.
func (c *Composite) ExtendWith(specs []Spec, opts ...Option) (*Composite, error) {
	added, err := normalize(specs)
	if err != nil {
		return nil, err
	}

	combined := append(slices.Clone(c.transformers), added...)

	return build(combined, c.options.apply(opts))
}

// OverrideBy returns a Composite built from the same combined sequence as
// ExtendWith, resolving conflicts instead of failing: of two entries sharing
// a (namespace, token) pair or a class, the later one wins and takes the
// position of the earliest entry it displaced. Other entries keep their
// relative order.
//
// The resulting options are those of the last *Composite among specs, if
// any; otherwise c's options with opts applied.
func (c *Composite) OverrideBy(specs []Spec, opts ...Option) (*Composite, error) {
	added, err := normalize(specs)
	if err != nil {
		return nil, err
	}

	options := c.options.apply(opts)
	for _, spec := range specs {
		if sc, ok := spec.(*Composite); ok {
			options = sc.options
		}
	}

	merged, diags := resolveOverrides(append(slices.Clone(c.transformers), added...))
	for _, d := range diags.Infos {
		options.Logger.Debug("transformer overridden",
			zap.String("path", d.Path),
			zap.Int("index", d.Index),
			zap.String("detail", d.Message))
	}

	return build(merged, options)
}

// resolveOverrides applies the last-wins rule to ts. Entries are visited
// from the end; an entry survives when neither its name nor its class has
// been claimed by a later survivor. A displaced entry lends its position to
// the survivor that displaced it, so the survivor ends up at the earliest
// displaced position.
func resolveOverrides(ts []unit.Transformer) ([]unit.Transformer, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	anchor := make([]int, len(ts))
	keep := make([]bool, len(ts))
	names := make(map[nameKey]int, len(ts))
	classes := make(map[reflect.Type]int)

	for i := len(ts) - 1; i >= 0; i-- {
		t := ts[i]
		k := keyOf(t)
		cls := classOf(t)

		winner, clash := names[k]
		if !clash && cls != nil {
			winner, clash = classes[cls]
		}

		if clash {
			anchor[winner] = i
			diags.AddInfo("overridden",
				fmt.Sprintf("replaced by %s from position %d", ts[winner].Path(), winner),
				t.Path(), i)

			continue
		}

		keep[i] = true
		anchor[i] = i
		names[k] = i

		if cls != nil {
			classes[cls] = i
		}
	}

	survivors := make([]int, 0, len(ts))
	for i := range ts {
		if keep[i] {
			survivors = append(survivors, i)
		}
	}

	slices.SortFunc(survivors, func(a, b int) int {
		return anchor[a] - anchor[b]
	})

	out := make([]unit.Transformer, len(survivors))
	for i, idx := range survivors {
		out[i] = ts[idx]
	}

	return out, diags
}
