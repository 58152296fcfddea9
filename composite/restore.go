package composite

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"type-transformer/internal/match"
	"type-transformer/node"
	"type-transformer/unit"
)

// Restore decodes a tree produced by Dump. It deep-copies the plain
// structure of v first, so the caller's value is never modified.
func (c *Composite) Restore(v any) (any, error) {
	return c.restore(node.Clone(v))
}

// RestoreUnsafe is Restore without the copy: every []any and map[string]any
// in v may be rewritten in place. Use it only on trees the caller owns
// exclusively, such as freshly decoded input.
func (c *Composite) RestoreUnsafe(v any) (any, error) {
	return c.restore(v)
}

func (c *Composite) restore(v any) (any, error) {
	switch n := v.(type) {
	case []any:
		for i, e := range n {
			r, err := c.restore(e)
			if err != nil {
				return nil, prependPath(err, strconv.Itoa(i))
			}

			n[i] = r
		}

		return n, nil
	case map[string]any:
		if t, key, ok := c.tagged(n); ok {
			inner, err := c.restore(n[key])
			if err != nil {
				return nil, prependPath(err, key)
			}

			out, err := t.Restore(inner)
			if err != nil {
				return nil, &TransformError{Op: OpRestore, Transformer: t.Path(), Cause: err}
			}

			return out, nil
		}

		for k, e := range n {
			r, err := c.restore(e)
			if err != nil {
				return nil, prependPath(err, k)
			}

			n[k] = r
		}

		return n, nil
	default:
		return v, nil
	}
}

// tagged reports whether m is a tag map naming a registered transformer.
func (c *Composite) tagged(m map[string]any) (unit.Transformer, string, bool) {
	if len(m) != 1 {
		return nil, "", false
	}

	for key := range m {
		path, ok := strings.CutPrefix(key, c.options.Prefix)
		if !ok {
			return nil, "", false
		}

		t, ok := c.paths[path]
		if !ok {
			c.logUnknown(key, path)
			return nil, "", false
		}

		return t, key, true
	}

	return nil, "", false
}

func (c *Composite) logUnknown(key, path string) {
	ce := c.options.Logger.Check(zap.DebugLevel, "unknown tag kept as data")
	if ce == nil {
		return
	}

	known := make([]string, len(c.transformers))
	for i, t := range c.transformers {
		known[i] = t.Path()
	}

	fields := []zap.Field{zap.String("key", key)}
	if s, ok := match.Suggest(path, known); ok {
		fields = append(fields, zap.String("closest", c.options.Prefix+s))
	}

	ce.Write(fields...)
}
