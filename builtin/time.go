package builtin

import (
	"fmt"
	"time"

	"type-transformer/primitive"
	"type-transformer/unit"
)

func timeTransformers() []unit.Transformer {
	return []unit.Transformer{
		unit.Must(unit.NewClass("time", Namespace, dumpTime, restoreTime)),
	}
}

func durationTransformers() []unit.Transformer {
	return []unit.Transformer{
		unit.Must(unit.NewClass("duration", Namespace, dumpDuration, restoreDuration)),
	}
}

func dumpTime(t time.Time) (any, error) {
	return t.Format(time.RFC3339Nano), nil
}

// restoreTime also accepts a time.Time, which some decoders produce for
// timestamp-looking scalars.
func restoreTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time: %w", err)
		}

		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("expected a time string, got %T", v)
	}
}

func dumpDuration(d time.Duration) (any, error) {
	return d.String(), nil
}

// restoreDuration accepts the textual form or a number of nanoseconds.
func restoreDuration(v any) (time.Duration, error) {
	if s, ok := v.(string); ok {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %w", err)
		}

		return d, nil
	}

	n, err := primitive.ToInt64(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %w", err)
	}

	return time.Duration(n), nil
}
