package msgpack

import (
	"fmt"
	"reflect"

	ugcodec "github.com/ugorji/go/codec"

	"type-transformer/codec"
)

// New creates the MessagePack serializer. Maps decode as map[string]any and
// raw strings as string.
func New() codec.Serializer {
	h := &ugcodec.MsgpackHandle{}
	h.MapType = reflect.TypeOf(map[string]any(nil))
	h.SliceType = reflect.TypeOf([]any(nil))
	h.RawToString = true
	h.WriteExt = true

	return &msgpackCodec{handle: h}
}

type msgpackCodec struct {
	handle *ugcodec.MsgpackHandle
}

func (*msgpackCodec) Name() string { return "msgpack" }

func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var out []byte
	if err := ugcodec.NewEncoderBytes(&out, c.handle).Encode(v); err != nil {
		return nil, fmt.Errorf("msgpack: marshal: %w", err)
	}

	return out, nil
}

func (c *msgpackCodec) Unmarshal(data []byte) (any, error) {
	var v any
	if err := ugcodec.NewDecoderBytes(data, c.handle).Decode(&v); err != nil {
		return nil, fmt.Errorf("msgpack: unmarshal: %w", err)
	}

	return v, nil
}
