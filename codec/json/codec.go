package json

import (
	"encoding/json"
	"fmt"

	"type-transformer/codec"
)

// New creates the JSON serializer. Numbers decode as float64.
func New() codec.Serializer {
	return jsonCodec{}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json: marshal: %w", err)
	}

	return data, nil
}

func (jsonCodec) Unmarshal(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("json: unmarshal: %w", err)
	}

	return v, nil
}
