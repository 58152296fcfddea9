// Package codec defines the text serializers a composite transformer hands
// its plain trees to.
//
// Every implementation must decode into plain trees only: map[string]any for
// objects, []any for arrays, and scalars. The restore walker does not look
// inside any other container type.
package codec

// Serializer converts plain trees to bytes and back.
type Serializer interface {
	// Name is the short format name, e.g. "json".
	Name() string

	// Marshal encodes a plain tree.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into a plain tree.
	Unmarshal(data []byte) (any, error)
}
