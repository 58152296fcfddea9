package node

import "type-transformer/internal/common"

// KindEnum is the structural shape of a value as seen by the walker.
type KindEnum int

const (
	KindScalar   KindEnum = iota // nil, bool, numbers, strings and anything else passed through as is
	KindSequence                 // []any, or any other slice or array
	KindRecord                   // map[string]any, or any other map keyed by a string kind

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return common.UnknownStr
	}
}
