package composite

import (
	"errors"
	"fmt"
	"strings"

	"type-transformer/unit"
)

var (
	// ErrInvalidSpec is returned for a spec that cannot become a transformer.
	ErrInvalidSpec = unit.ErrNoMatcher
	// ErrInconsistent is returned when two transformers share a token
	// within a namespace, or two class transformers share a type.
	ErrInconsistent = errors.New("inconsistent transformers")
)

// ConstructionError reports why a registry could not be built. No partial
// registry is ever returned alongside it.
type ConstructionError struct {
	// Index is the position of the offending spec, or -1 when the registry
	// as a whole is inconsistent.
	Index int
	Cause error
}

func (e *ConstructionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("composite: spec #%d: %v", e.Index, e.Cause)
	}

	return "composite: " + e.Cause.Error()
}

func (e *ConstructionError) Unwrap() error { return e.Cause }

// Op names the walker phase a TransformError occurred in.
type Op string

const (
	OpDump    Op = "dump"
	OpRestore Op = "restore"
)

// TransformError wraps a failure returned by a unit transformer's Dump or
// Restore function.
type TransformError struct {
	Op Op
	// Transformer is the path of the failing transformer.
	Transformer string
	// Path lists the keys and indexes leading from the root to the node.
	Path  []string
	Cause error
}

func (e *TransformError) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Op))
	b.WriteString(" ")
	b.WriteString(e.Transformer)

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "/"))
	}

	b.WriteString(": ")
	b.WriteString(e.Cause.Error())

	return b.String()
}

func (e *TransformError) Unwrap() error { return e.Cause }

// prependPath records that err happened below the node reached through seg.
func prependPath(err error, seg string) error {
	var te *TransformError
	if errors.As(err, &te) {
		te.Path = append([]string{seg}, te.Path...)
	}

	return err
}
