package types

import (
	"fmt"
	"strings"
)

// Kind identifies the category of a canonical type node.
type Kind string

const (
	// KindScalar is a primitive value type (int64, float64, str, ...).
	KindScalar Kind = "scalar"

	// KindOptional is a value of the element type or absence.
	KindOptional Kind = "optional"

	// KindList is a homogeneous ordered collection.
	KindList Kind = "list"

	// KindDict is a homogeneous key-value mapping.
	KindDict Kind = "dict"

	// KindSet is a homogeneous unordered collection.
	KindSet Kind = "set"

	// KindTuple is a fixed-arity heterogeneous sequence.
	KindTuple Kind = "tuple"

	// KindArray is an n-dimensional array with an element dtype and layout.
	KindArray Kind = "array"
)

// Layout describes the memory ordering of an Array type.
type Layout string

const (
	// LayoutAny places no constraint on element ordering.
	LayoutAny Layout = "A"

	// LayoutC is row-major (C-contiguous) ordering.
	LayoutC Layout = "C"

	// LayoutF is column-major (Fortran-contiguous) ordering.
	LayoutF Layout = "F"
)

// Type is a canonical type node produced by annotation resolution.
// Nodes are immutable values: they are constructed, never mutated, and
// compared structurally with Equal.
type Type interface {
	// TypeKind returns the variant tag for type switching.
	TypeKind() Kind

	// String returns the canonical textual form of the type.
	String() string

	// Equal reports whether two nodes are structurally identical.
	Equal(other Type) bool
}

// Scalar is a primitive value type identified by name.
type Scalar struct {
	// Name is the canonical scalar name (e.g. "int64", "str", "none").
	Name string
}

// Well-known scalar types. The resolution registry seeds its exact-match
// table with the first six.
var (
	Int64      = Scalar{Name: "int64"}
	Float64    = Scalar{Name: "float64"}
	Complex128 = Scalar{Name: "complex128"}
	Str        = Scalar{Name: "str"}
	Bool       = Scalar{Name: "bool"}
	None       = Scalar{Name: "none"}
)

// TypeKind returns KindScalar.
func (s Scalar) TypeKind() Kind { return KindScalar }

// String returns the scalar name.
func (s Scalar) String() string { return s.Name }

// Equal reports whether other is the same scalar.
func (s Scalar) Equal(other Type) bool {
	o, ok := other.(Scalar)
	return ok && o.Name == s.Name
}

// Optional is a value of the element type or absence.
type Optional struct {
	// Elem is the present-value type.
	Elem Type
}

// TypeKind returns KindOptional.
func (o Optional) TypeKind() Kind { return KindOptional }

// String returns the canonical textual form.
func (o Optional) String() string { return fmt.Sprintf("optional(%s)", o.Elem) }

// Equal reports whether other is an Optional with an equal element type.
func (o Optional) Equal(other Type) bool {
	t, ok := other.(Optional)
	return ok && o.Elem.Equal(t.Elem)
}

// List is a homogeneous ordered collection.
type List struct {
	// Elem is the element type.
	Elem Type
}

// TypeKind returns KindList.
func (l List) TypeKind() Kind { return KindList }

// String returns the canonical textual form.
func (l List) String() string { return fmt.Sprintf("list(%s)", l.Elem) }

// Equal reports whether other is a List with an equal element type.
func (l List) Equal(other Type) bool {
	t, ok := other.(List)
	return ok && l.Elem.Equal(t.Elem)
}

// Dict is a homogeneous key-value mapping.
type Dict struct {
	// Key is the key type.
	Key Type

	// Value is the value type.
	Value Type
}

// TypeKind returns KindDict.
func (d Dict) TypeKind() Kind { return KindDict }

// String returns the canonical textual form.
func (d Dict) String() string { return fmt.Sprintf("dict(%s, %s)", d.Key, d.Value) }

// Equal reports whether other is a Dict with equal key and value types.
func (d Dict) Equal(other Type) bool {
	t, ok := other.(Dict)
	return ok && d.Key.Equal(t.Key) && d.Value.Equal(t.Value)
}

// Set is a homogeneous unordered collection.
type Set struct {
	// Elem is the element type.
	Elem Type
}

// TypeKind returns KindSet.
func (s Set) TypeKind() Kind { return KindSet }

// String returns the canonical textual form.
func (s Set) String() string { return fmt.Sprintf("set(%s)", s.Elem) }

// Equal reports whether other is a Set with an equal element type.
func (s Set) Equal(other Type) bool {
	t, ok := other.(Set)
	return ok && s.Elem.Equal(t.Elem)
}

// Tuple is a fixed-arity heterogeneous sequence. Element order is
// significant.
type Tuple struct {
	// Elems are the element types in positional order.
	Elems []Type
}

// TupleOf builds a Tuple from the given element types, preserving order.
func TupleOf(elems ...Type) Tuple {
	out := make([]Type, len(elems))
	copy(out, elems)
	return Tuple{Elems: out}
}

// TypeKind returns KindTuple.
func (t Tuple) TypeKind() Kind { return KindTuple }

// String returns the canonical textual form.
func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return fmt.Sprintf("tuple(%s)", strings.Join(parts, ", "))
}

// Equal reports whether other is a Tuple with equal elements in the same
// order.
func (t Tuple) Equal(other Type) bool {
	o, ok := other.(Tuple)
	if !ok || len(o.Elems) != len(t.Elems) {
		return false
	}
	for i, e := range t.Elems {
		if !e.Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

// Array is an n-dimensional array type.
type Array struct {
	// DType is the element type.
	DType Type

	// NDim is the number of dimensions.
	NDim int

	// Layout is the memory ordering.
	Layout Layout
}

// TypeKind returns KindArray.
func (a Array) TypeKind() Kind { return KindArray }

// String returns the canonical textual form.
func (a Array) String() string {
	return fmt.Sprintf("array(%s, %d, %s)", a.DType, a.NDim, a.Layout)
}

// Equal reports whether other is an Array with equal dtype, rank, and
// layout.
func (a Array) Equal(other Type) bool {
	o, ok := other.(Array)
	return ok && a.DType.Equal(o.DType) && a.NDim == o.NDim && a.Layout == o.Layout
}

// Validate checks that t is a well-formed canonical type node: a known
// variant with non-nil, recursively valid components. The resolution
// engine uses it to reject malformed values produced by custom strategies.
func Validate(t Type) error {
	if t == nil {
		return fmt.Errorf("nil canonical type")
	}
	switch n := t.(type) {
	case Scalar:
		if n.Name == "" {
			return fmt.Errorf("scalar type with empty name")
		}
		return nil
	case Optional:
		if err := Validate(n.Elem); err != nil {
			return fmt.Errorf("optional element: %w", err)
		}
		return nil
	case List:
		if err := Validate(n.Elem); err != nil {
			return fmt.Errorf("list element: %w", err)
		}
		return nil
	case Dict:
		if err := Validate(n.Key); err != nil {
			return fmt.Errorf("dict key: %w", err)
		}
		if err := Validate(n.Value); err != nil {
			return fmt.Errorf("dict value: %w", err)
		}
		return nil
	case Set:
		if err := Validate(n.Elem); err != nil {
			return fmt.Errorf("set element: %w", err)
		}
		return nil
	case Tuple:
		for i, e := range n.Elems {
			if err := Validate(e); err != nil {
				return fmt.Errorf("tuple element %d: %w", i, err)
			}
		}
		return nil
	case Array:
		if err := Validate(n.DType); err != nil {
			return fmt.Errorf("array dtype: %w", err)
		}
		if n.NDim < 1 {
			return fmt.Errorf("array with non-positive rank %d", n.NDim)
		}
		switch n.Layout {
		case LayoutAny, LayoutC, LayoutF:
			return nil
		default:
			return fmt.Errorf("unknown array layout %q", n.Layout)
		}
	default:
		return fmt.Errorf("unknown canonical type variant %T", t)
	}
}
