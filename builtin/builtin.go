package builtin

import (
	"type-transformer/composite"
	"type-transformer/options"
	"type-transformer/unit"
)

// Namespace holds every builtin transformer.
const Namespace = "go"

type factory func() []unit.Transformer

var factories = []struct {
	category options.CategoryEnum
	build    factory
}{
	{options.CategoryTime, timeTransformers},
	{options.CategoryDuration, durationTransformers},
	{options.CategoryBigNumber, bigTransformers},
	{options.CategoryUUID, uuidTransformers},
	{options.CategoryBytes, bytesTransformers},
	{options.CategoryComplex, complexTransformers},
	{options.CategoryFloatSentinels, sentinelTransformers},
}

// Transformers returns the builtin transformers selected by mask, in
// category order.
func Transformers(mask options.CategoryEnum) []unit.Transformer {
	var out []unit.Transformer

	for _, f := range factories {
		if mask.Has(f.category) {
			out = append(out, f.build()...)
		}
	}

	return out
}

// New builds a Composite holding the builtin transformers selected by mask.
func New(mask options.CategoryEnum, opts ...composite.Option) (*composite.Composite, error) {
	ts := Transformers(mask)

	specs := make([]composite.Spec, len(ts))
	for i, t := range ts {
		specs[i] = t
	}

	return composite.New(specs, opts...)
}
