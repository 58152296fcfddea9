package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"type-transformer/codec"
)

// New creates the YAML serializer.
func New() codec.Serializer {
	return yamlCodec{}
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yaml: marshal: %w", err)
	}

	return data, nil
}

func (yamlCodec) Unmarshal(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("yaml: unmarshal: %w", err)
	}

	return normalize(v)
}

// normalize rewrites the map[any]any that yaml.v3 produces for mappings
// with non-string keys. Those keys cannot be represented in a plain tree.
func normalize(v any) (any, error) {
	switch n := v.(type) {
	case []any:
		for i, e := range n {
			r, err := normalize(e)
			if err != nil {
				return nil, err
			}

			n[i] = r
		}

		return n, nil
	case map[string]any:
		for k, e := range n {
			r, err := normalize(e)
			if err != nil {
				return nil, err
			}

			n[k] = r
		}

		return n, nil
	case map[any]any:
		out := make(map[string]any, len(n))
		for k, e := range n {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yaml: unmarshal: mapping key %v (%T) is not a string", k, k)
			}

			r, err := normalize(e)
			if err != nil {
				return nil, err
			}

			out[key] = r
		}

		return out, nil
	default:
		return v, nil
	}
}
