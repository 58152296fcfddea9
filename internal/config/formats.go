package config

import (
	"fmt"
	"slices"
	"strings"

	"type-transformer/codec"
	"type-transformer/codec/cbor"
	"type-transformer/codec/json"
	"type-transformer/codec/msgpack"
	"type-transformer/codec/yaml"
	"type-transformer/internal/match"
)

var serializers = map[string]func() codec.Serializer{
	"json":    json.New,
	"yaml":    yaml.New,
	"msgpack": msgpack.New,
	"cbor":    cbor.New,
}

// Formats lists the accepted format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(serializers))
	for name := range serializers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// SerializerFor returns the serializer registered under name. "yml" is
// accepted as an alias for "yaml".
func SerializerFor(name string) (codec.Serializer, error) {
	name = strings.ToLower(name)
	if name == "yml" {
		name = "yaml"
	}

	newFn, ok := serializers[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q%s, want one of %s", name, match.Hint(name, Formats()), strings.Join(Formats(), ", "))
	}

	return newFn(), nil
}
