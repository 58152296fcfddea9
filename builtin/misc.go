package builtin

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"type-transformer/primitive"
	"type-transformer/unit"
)

func uuidTransformers() []unit.Transformer {
	return []unit.Transformer{
		unit.Must(unit.NewClass("uuid", Namespace,
			func(id uuid.UUID) (any, error) { return id.String(), nil },
			restoreUUID)),
	}
}

func bytesTransformers() []unit.Transformer {
	return []unit.Transformer{
		unit.Must(unit.NewClass("bytes", Namespace, dumpBytes, restoreBytes)),
	}
}

func restoreUUID(v any) (uuid.UUID, error) {
	s, err := primitive.ToString(v)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uuid: %w", err)
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uuid: %w", err)
	}

	return id, nil
}

func dumpBytes(b []byte) (any, error) {
	if b == nil {
		return nil, nil
	}

	return base64.StdEncoding.EncodeToString(b), nil
}

// restoreBytes also accepts raw bytes from binary serializers.
func restoreBytes(v any) ([]byte, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		out, err := base64.StdEncoding.DecodeString(b)
		if err != nil {
			return nil, fmt.Errorf("invalid base64: %w", err)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("expected a base64 string, got %T", v)
	}
}
