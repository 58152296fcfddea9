package composite

import (
	"fmt"
	"reflect"

	"type-transformer/internal/diagnostic"
	"type-transformer/node"
	"type-transformer/unit"
)

type nameKey struct {
	namespace string
	token     string
}

func keyOf(t unit.Transformer) nameKey {
	return nameKey{namespace: t.Namespace(), token: t.Token()}
}

// classOf returns the class identity of t, or nil for non-class variants.
func classOf(t unit.Transformer) reflect.Type {
	if t.Variant() != unit.VariantClass {
		return nil
	}

	return t.Class()
}

// validateConsistency reports every (namespace, token) pair and every class
// claimed by more than one transformer. Each conflict is reported once, at
// the position of its first duplicate.
func validateConsistency(ts []unit.Transformer) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}
	names := make(map[nameKey][]int, len(ts))
	classes := make(map[reflect.Type][]int)

	for i, t := range ts {
		k := keyOf(t)
		names[k] = append(names[k], i)

		if cls := classOf(t); cls != nil {
			classes[cls] = append(classes[cls], i)
		}
	}

	for i, t := range ts {
		if idx := names[keyOf(t)]; len(idx) > 1 && idx[0] == i {
			diags.AddError("duplicate_token",
				fmt.Sprintf("%d transformers for token %s", len(idx), t.Token()),
				t.Path(), idx[1])
		}

		cls := classOf(t)
		if cls == nil {
			continue
		}

		if idx := classes[cls]; len(idx) > 1 && idx[0] == i {
			diags.AddError("duplicate_class",
				fmt.Sprintf("%d transformers for class %s", len(idx), node.TypeName(cls)),
				t.Path(), idx[1])
		}
	}

	return diags
}
