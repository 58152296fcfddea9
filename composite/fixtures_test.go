package composite

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"type-transformer/unit"
)

type point struct{ X, Y float64 }

type segment struct{ A, B point }

type marker struct{ name string }

var missing = marker{"missing"}

func dumpPoint(p point) (any, error) {
	return map[string]any{"x": p.X, "y": p.Y}, nil
}

func restorePoint(v any) (point, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return point{}, fmt.Errorf("expected a record, got %T", v)
	}

	x, okX := m["x"].(float64)
	y, okY := m["y"].(float64)
	if !okX || !okY {
		return point{}, errors.New("point needs numeric x and y")
	}

	return point{X: x, Y: y}, nil
}

func newPoint(t testing.TB, token, namespace string) *unit.Class {
	t.Helper()

	c, err := unit.NewClass(token, namespace, dumpPoint, restorePoint)
	require.NoError(t, err)

	return c
}

func newSegment(t testing.TB) *unit.Class {
	t.Helper()

	c, err := unit.NewClass("segment", "geo",
		func(s segment) (any, error) { return map[string]any{"a": s.A, "b": s.B}, nil },
		func(v any) (segment, error) {
			m := v.(map[string]any)
			return segment{A: m["a"].(point), B: m["b"].(point)}, nil
		})
	require.NoError(t, err)

	return c
}

func newMissing(t testing.TB) *unit.Equal {
	t.Helper()

	e, err := unit.NewEqual("missing", "", missing)
	require.NoError(t, err)

	return e
}

// newConst builds a predicate matching v == want that dumps to label.
func newConst(t testing.TB, token string, want any, label string) *unit.Predicate {
	t.Helper()

	p, err := unit.NewPredicate(token, "",
		func(v any) bool { return v == want },
		func(any) (any, error) { return label, nil },
		func(any) (any, error) { return want, nil })
	require.NoError(t, err)

	return p
}

func newGeo(t testing.TB, opts ...Option) *Composite {
	t.Helper()

	c, err := New([]Spec{newPoint(t, "point", "geo"), newSegment(t), newMissing(t)}, opts...)
	require.NoError(t, err)

	return c
}

func paths(c *Composite) []string {
	var out []string
	for _, t := range c.Transformers() {
		out = append(out, t.Path())
	}

	return out
}
