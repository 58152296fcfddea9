package unit

import (
	"fmt"
	"reflect"

	"type-transformer/node"
)

// Class matches values of one exact dynamic type.
type Class struct {
	name
	class   reflect.Type
	dump    DumpFunc
	restore RestoreFunc
}

// NewClass creates a Class transformer for the type argument T.
//
//	point, err := unit.NewClass("point", "geo",
//		func(p Point) (any, error) { return map[string]any{"x": p.X, "y": p.Y}, nil },
//		restorePoint)
func NewClass[T any](token, namespace string, dump func(T) (any, error), restore func(any) (T, error)) (*Class, error) {
	if dump == nil || restore == nil {
		return nil, fmt.Errorf("failed to create class transformer %s: missing dump or restore", JoinPath(namespace, token))
	}

	class := reflect.TypeFor[T]()

	return NewClassOf(token, namespace, class,
		func(v any) (any, error) {
			typed, ok := v.(T)
			if !ok {
				return nil, fmt.Errorf("expected %s, got %T", node.TypeName(class), v)
			}

			return dump(typed)
		},
		func(v any) (any, error) {
			restored, err := restore(v)
			if err != nil {
				return nil, err
			}

			return restored, nil
		})
}

// NewClassOf creates a Class transformer for an explicit reflect.Type.
func NewClassOf(token, namespace string, class reflect.Type, dump DumpFunc, restore RestoreFunc) (*Class, error) {
	n, err := newName(token, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create class transformer: %w", err)
	}

	switch {
	case class == nil:
		return nil, fmt.Errorf("failed to create class transformer %s: missing class", n.path)
	case class.Kind() == reflect.Interface:
		return nil, fmt.Errorf("failed to create class transformer %s: %s is an interface type", n.path, node.TypeName(class))
	case dump == nil || restore == nil:
		return nil, fmt.Errorf("failed to create class transformer %s: missing dump or restore", n.path)
	}

	return &Class{name: n, class: class, dump: dump, restore: restore}, nil
}

func (c *Class) Variant() Variant    { return VariantClass }
func (c *Class) Class() reflect.Type { return c.class }

// Match reports whether the dynamic type of v is exactly the registered type.
func (c *Class) Match(v any) bool {
	return v != nil && reflect.TypeOf(v) == c.class
}

func (c *Class) Dump(v any) (any, error)    { return c.dump(v) }
func (c *Class) Restore(v any) (any, error) { return c.restore(v) }
