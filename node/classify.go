package node

import "reflect"

// IsPlain reports whether v is one of the anonymous plain containers,
// []any or map[string]any. Plain containers are never matched by type.
func IsPlain(v any) bool {
	switch v.(type) {
	case []any, map[string]any:
		return true
	default:
		return false
	}
}

// Classify returns the structural kind of v. Plain containers are detected
// without reflection; typed slices, arrays and string-keyed maps are
// reported as sequences and records so the walker can normalize them.
func Classify(v any) KindEnum {
	switch v.(type) {
	case nil:
		return KindScalar
	case []any:
		return KindSequence
	case map[string]any:
		return KindRecord
	}

	rtype := reflect.TypeOf(v)
	switch rtype.Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		if rtype.Key().Kind() == reflect.String {
			return KindRecord
		}

		return KindScalar
	default:
		return KindScalar
	}
}

// Elements returns the elements of a sequence as a fresh []any.
// It panics if v is not a sequence.
func Elements(v any) []any {
	if s, ok := v.([]any); ok {
		if s == nil {
			return nil
		}

		out := make([]any, len(s))
		copy(out, s)

		return out
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		panic("node: Elements called on " + rv.Kind().String())
	}

	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out
}

// Fields returns the entries of a record as a fresh map[string]any.
// It panics if v is not a record.
func Fields(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		if m == nil {
			return nil
		}

		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = e
		}

		return out
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		panic("node: Fields called on " + rv.Type().String())
	}

	if rv.IsNil() {
		return nil
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out
}
