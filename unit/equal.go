package unit

import (
	"fmt"
	"math"
	"reflect"
)

// Equal matches a single sentinel value. It dumps to nil and restores to
// the captured value. NaN sentinels match any NaN of the same float type.
type Equal struct {
	name
	value any
	nan   bool
}

// NewEqual creates an Equal transformer for value, which must be non-nil
// and comparable with ==. A nil sentinel would match its own nil payload.
func NewEqual(token, namespace string, value any) (*Equal, error) {
	n, err := newName(token, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create equality transformer: %w", err)
	}

	if value == nil {
		return nil, fmt.Errorf("failed to create equality transformer %s: nil sentinel", n.path)
	}

	if !reflect.ValueOf(value).Comparable() {
		return nil, fmt.Errorf("failed to create equality transformer %s: %T is not comparable", n.path, value)
	}

	return &Equal{name: n, value: value, nan: isNaN(value)}, nil
}

// Value returns the captured sentinel.
func (e *Equal) Value() any { return e.value }

func (e *Equal) Variant() Variant    { return VariantEqual }
func (e *Equal) Class() reflect.Type { return nil }

func (e *Equal) Match(v any) bool {
	if e.nan {
		return isNaN(v) && reflect.TypeOf(v) == reflect.TypeOf(e.value)
	}

	return v == e.value
}

func (e *Equal) Dump(any) (any, error)    { return nil, nil }
func (e *Equal) Restore(any) (any, error) { return e.value, nil }

func isNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	default:
		return false
	}
}
