package primitive

import (
	"reflect"
	"strconv"
)

// KindEnum groups reflect kinds by how a restore function reads them.
// Named types fall into the group of their underlying kind.
type KindEnum int

const (
	KindOther    KindEnum = iota // not a scalar a plain tree carries
	KindSigned                   // int, int8 ... int64 and named variants
	KindUnsigned                 // uint, uint8 ... uintptr and named variants
	KindFloat                    // float32, float64 and named variants
	KindString                   // string and named variants
)

func (k KindEnum) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "KindEnum(" + strconv.Itoa(int(k)) + ")"
	}
}

// FromReflectType returns the group of rtype's kind.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return KindOther
	}

	switch rtype.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindSigned
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUnsigned
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	default:
		return KindOther
	}
}
