package composite

import "fmt"

// Stringify dumps v and encodes the result with the configured serializer.
func (c *Composite) Stringify(v any) ([]byte, error) {
	plain, err := c.Dump(v)
	if err != nil {
		return nil, err
	}

	data, err := c.options.Serializer.Marshal(plain)
	if err != nil {
		return nil, fmt.Errorf("composite: stringify: %w", err)
	}

	return data, nil
}

// Parse decodes data with the configured serializer and restores the
// result. The decoded tree is owned by Parse, so it is restored in place.
func (c *Composite) Parse(data []byte) (any, error) {
	plain, err := c.options.Serializer.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("composite: parse: %w", err)
	}

	return c.RestoreUnsafe(plain)
}
