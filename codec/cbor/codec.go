package cbor

import (
	"fmt"
	"reflect"

	ugcodec "github.com/ugorji/go/codec"

	"type-transformer/codec"
)

// New creates the CBOR serializer.
func New() codec.Serializer {
	h := &ugcodec.CborHandle{}
	h.MapType = reflect.TypeOf(map[string]any(nil))
	h.SliceType = reflect.TypeOf([]any(nil))

	return &cborCodec{handle: h}
}

type cborCodec struct {
	handle *ugcodec.CborHandle
}

func (*cborCodec) Name() string { return "cbor" }

func (c *cborCodec) Marshal(v any) ([]byte, error) {
	var out []byte
	if err := ugcodec.NewEncoderBytes(&out, c.handle).Encode(v); err != nil {
		return nil, fmt.Errorf("cbor: marshal: %w", err)
	}

	return out, nil
}

func (c *cborCodec) Unmarshal(data []byte) (any, error) {
	var v any
	if err := ugcodec.NewDecoderBytes(data, c.handle).Decode(&v); err != nil {
		return nil, fmt.Errorf("cbor: unmarshal: %w", err)
	}

	return v, nil
}
