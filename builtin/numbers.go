package builtin

import (
	"fmt"
	"math"
	"math/big"

	"type-transformer/primitive"
	"type-transformer/unit"
)

func bigTransformers() []unit.Transformer {
	return []unit.Transformer{
		unit.Must(unit.NewClass("bigint", Namespace, dumpBigInt, restoreBigInt)),
		unit.Must(unit.NewClass("bigrat", Namespace, dumpBigRat, restoreBigRat)),
	}
}

func complexTransformers() []unit.Transformer {
	return []unit.Transformer{
		unit.Must(unit.NewClass("complex", Namespace, dumpComplex, restoreComplex)),
	}
}

// sentinelTransformers covers the float64 values no text serializer can
// carry as a number.
func sentinelTransformers() []unit.Transformer {
	return []unit.Transformer{
		unit.Must(unit.NewEqual("nan", Namespace, math.NaN())),
		unit.Must(unit.NewEqual("inf", Namespace, math.Inf(1))),
		unit.Must(unit.NewEqual("neginf", Namespace, math.Inf(-1))),
	}
}

func dumpBigInt(n *big.Int) (any, error) {
	if n == nil {
		return nil, nil
	}

	return n.String(), nil
}

func restoreBigInt(v any) (*big.Int, error) {
	if v == nil {
		return nil, nil
	}

	s, err := primitive.ToString(v)
	if err != nil {
		return nil, fmt.Errorf("invalid big integer: %w", err)
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid big integer %q", s)
	}

	return n, nil
}

func dumpBigRat(r *big.Rat) (any, error) {
	if r == nil {
		return nil, nil
	}

	return r.String(), nil
}

func restoreBigRat(v any) (*big.Rat, error) {
	if v == nil {
		return nil, nil
	}

	s, err := primitive.ToString(v)
	if err != nil {
		return nil, fmt.Errorf("invalid big rational: %w", err)
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid big rational %q", s)
	}

	return r, nil
}

func dumpComplex(c complex128) (any, error) {
	return []any{real(c), imag(c)}, nil
}

func restoreComplex(v any) (complex128, error) {
	parts, ok := v.([]any)
	if !ok || len(parts) != 2 {
		return 0, fmt.Errorf("expected [re, im], got %T", v)
	}

	re, err := primitive.ToFloat64(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid real part: %w", err)
	}

	im, err := primitive.ToFloat64(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid imaginary part: %w", err)
	}

	return complex(re, im), nil
}
