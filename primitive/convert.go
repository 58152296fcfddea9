package primitive

import (
	"fmt"
	"math"
	"reflect"
)

// ToInt64 converts any integer kind, or an integral float, to int64. Named
// numeric types such as time.Duration are accepted by their kind.
// Serializers disagree on which number type they decode to (JSON yields
// float64, MessagePack yields int64 or uint64, YAML yields int), so restore
// functions accept all of them.
func ToInt64(v any) (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("expected a number, got nil")
	}

	rv := reflect.ValueOf(v)
	kind := FromReflectType(rv.Type())

	switch kind {
	case KindSigned:
		return rv.Int(), nil
	case KindUnsigned:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", u)
		}

		return int64(u), nil
	case KindFloat:
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%v is not representable as int64", f)
		}

		return int64(f), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T (%s)", v, kind)
	}
}

// ToFloat64 converts any number kind to float64.
func ToFloat64(v any) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("expected a number, got nil")
	}

	rv := reflect.ValueOf(v)
	kind := FromReflectType(rv.Type())

	switch kind {
	case KindSigned:
		return float64(rv.Int()), nil
	case KindUnsigned:
		return float64(rv.Uint()), nil
	case KindFloat:
		return rv.Float(), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T (%s)", v, kind)
	}
}

// ToString accepts a string or raw bytes, including named string and
// byte slice types.
func ToString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case nil:
		return "", fmt.Errorf("expected a string, got nil")
	}

	rv := reflect.ValueOf(v)
	switch {
	case FromReflectType(rv.Type()) == KindString:
		return rv.String(), nil
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return string(rv.Bytes()), nil
	default:
		return "", fmt.Errorf("expected a string, got %T", v)
	}
}
