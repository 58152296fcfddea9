package composite

import (
	"reflect"
	"strconv"

	"type-transformer/node"
	"type-transformer/unit"
)

// Dump encodes v into a plain tree of map[string]any, []any and scalars.
// The input is never modified.
//
// Slices, arrays and string-keyed maps of any element type with no
// transformer of their own are dumped as []any and map[string]any, and
// Restore returns them in that form, not as the original typed container.
func (c *Composite) Dump(v any) (any, error) {
	for _, t := range c.predicates {
		if t.Match(v) {
			return c.wrap(t, v)
		}
	}

	if v != nil && !node.IsPlain(v) {
		if t, ok := c.classes[reflect.TypeOf(v)]; ok {
			return c.wrap(t, v)
		}
	}

	switch node.Classify(v) {
	case node.KindSequence:
		elems := node.Elements(v)
		for i, e := range elems {
			enc, err := c.Dump(e)
			if err != nil {
				return nil, prependPath(err, strconv.Itoa(i))
			}

			elems[i] = enc
		}

		return elems, nil
	case node.KindRecord:
		fields := node.Fields(v)
		for k, e := range fields {
			enc, err := c.Dump(e)
			if err != nil {
				return nil, prependPath(err, k)
			}

			fields[k] = enc
		}

		return fields, nil
	default:
		return v, nil
	}
}

// wrap dumps v with t and tags the encoded result.
func (c *Composite) wrap(t unit.Transformer, v any) (any, error) {
	key := c.tagKey(t)

	dumped, err := t.Dump(v)
	if err != nil {
		return nil, &TransformError{Op: OpDump, Transformer: t.Path(), Cause: err}
	}

	enc, err := c.Dump(dumped)
	if err != nil {
		return nil, prependPath(err, key)
	}

	return map[string]any{key: enc}, nil
}

func (c *Composite) tagKey(t unit.Transformer) string {
	return c.options.Prefix + t.Path()
}
