package node

import (
	"reflect"
	"strconv"

	"type-transformer/internal/common"
)

// TypeName returns a short, readable name for t: named types are qualified
// by their package alias ("big.Int", "uuid.UUID"), composites are spelled
// out recursively.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		if t.Name() == "" {
			return "[]" + TypeName(t.Elem())
		}
	case reflect.Array:
		if t.Name() == "" {
			return "[" + strconv.Itoa(t.Len()) + "]" + TypeName(t.Elem())
		}
	case reflect.Map:
		if t.Name() == "" {
			return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
		}
	}

	if alias := common.PkgAlias(t.PkgPath()); alias != "" && t.Name() != "" {
		return alias + "." + t.Name()
	}

	return t.String()
}
