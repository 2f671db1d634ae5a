package annotate

import (
	"fmt"
	"strings"

	"github.com/hintwire/hintwire/pkg/types"
)

// DescKind identifies the variant of a TypeDescriptor.
type DescKind string

const (
	// DescClass is a host class object (primitive or user-defined).
	DescClass DescKind = "class"

	// DescGeneric is a parametrized generic alias (List[int], Union[...]).
	DescGeneric DescKind = "generic"

	// DescAnnotated is a metadata wrapper pairing an inner type with
	// auxiliary metadata values.
	DescAnnotated DescKind = "annotated"

	// DescNativeKind is a native numeric or array-element kind.
	DescNativeKind DescKind = "native"

	// DescCanonical is an already-resolved canonical type.
	DescCanonical DescKind = "canonical"
)

// TypeDescriptor is an opaque host-language type annotation. It is a
// closed tagged variant: every descriptor is one of Class, Generic,
// Annotated, NativeKindDesc, or Canonical. Descriptors are immutable; the
// Registry only reads them.
type TypeDescriptor interface {
	// DescKind returns the variant tag for type switching.
	DescKind() DescKind

	// Key returns a stable structural key identifying the descriptor in
	// the exact-match table. Two descriptors with the same key denote the
	// same annotation.
	Key() string

	// String returns a human-readable annotation form.
	String() string
}

// Origin tags the container shape of a Generic descriptor.
type Origin string

const (
	// OriginList is a list-like generic with one element argument.
	OriginList Origin = "list"

	// OriginDict is a dict-like generic with key and value arguments.
	OriginDict Origin = "dict"

	// OriginSet is a set-like generic with one element argument.
	OriginSet Origin = "set"

	// OriginTuple is a tuple-like generic with any number of arguments.
	OriginTuple Origin = "tuple"

	// OriginUnion is a union-like generic; only two-member optional
	// unions resolve.
	OriginUnion Origin = "union"
)

// Class is a host class object identified by name.
type Class struct {
	// Name is the host-side class name.
	Name string
}

// Well-known host classes. The first six seed the registry's exact-match
// table; ClassNone is the none sentinel recognized in unions; ClassNDArray
// is the array-like sentinel recognized in metadata wrappers.
var (
	ClassInt     = Class{Name: "int"}
	ClassFloat   = Class{Name: "float"}
	ClassComplex = Class{Name: "complex"}
	ClassStr     = Class{Name: "str"}
	ClassBool    = Class{Name: "bool"}
	ClassNone    = Class{Name: "None"}
	ClassNDArray = Class{Name: "ndarray"}
)

// DescKind returns DescClass.
func (c Class) DescKind() DescKind { return DescClass }

// Key returns the structural key.
func (c Class) Key() string { return "class:" + c.Name }

// String returns the class name.
func (c Class) String() string { return c.Name }

// Generic is a parametrized generic alias: an origin tag plus an ordered
// sequence of type-argument descriptors.
type Generic struct {
	// Origin is the container shape tag.
	Origin Origin

	// Args are the type arguments in declaration order.
	Args []TypeDescriptor
}

// DescKind returns DescGeneric.
func (g Generic) DescKind() DescKind { return DescGeneric }

// Key returns the structural key.
func (g Generic) Key() string {
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.Key()
	}
	return fmt.Sprintf("generic:%s[%s]", g.Origin, strings.Join(parts, ","))
}

// String returns an annotation-style form such as "List[int]".
func (g Generic) String() string {
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.String()
	}
	name := map[Origin]string{
		OriginList:  "List",
		OriginDict:  "Dict",
		OriginSet:   "Set",
		OriginTuple: "Tuple",
		OriginUnion: "Union",
	}[g.Origin]
	if name == "" {
		name = string(g.Origin)
	}
	return fmt.Sprintf("%s[%s]", name, strings.Join(parts, ", "))
}

// Annotated is a metadata wrapper: an inner type descriptor plus an
// ordered sequence of arbitrary metadata values. Metadata elements may be
// TypeDescriptors, canonical types, ints, or strings depending on the
// wrapper idiom in use.
type Annotated struct {
	// Inner is the wrapped type descriptor.
	Inner TypeDescriptor

	// Metadata are the wrapper's metadata values in order.
	Metadata []any
}

// DescKind returns DescAnnotated.
func (a Annotated) DescKind() DescKind { return DescAnnotated }

// Key returns the structural key.
func (a Annotated) Key() string {
	parts := make([]string, len(a.Metadata))
	for i, m := range a.Metadata {
		parts[i] = metadataKey(m)
	}
	return fmt.Sprintf("annotated:%s|%s", a.Inner.Key(), strings.Join(parts, ","))
}

// String returns an annotation-style form such as
// "Annotated[ndarray, float64, 2]".
func (a Annotated) String() string {
	parts := make([]string, 0, len(a.Metadata)+1)
	parts = append(parts, a.Inner.String())
	for _, m := range a.Metadata {
		parts = append(parts, metadataString(m))
	}
	return fmt.Sprintf("Annotated[%s]", strings.Join(parts, ", "))
}

func metadataKey(m any) string {
	switch v := m.(type) {
	case TypeDescriptor:
		return v.Key()
	case types.Type:
		return "canonical:" + v.String()
	default:
		return fmt.Sprintf("%T:%v", m, m)
	}
}

func metadataString(m any) string {
	switch v := m.(type) {
	case TypeDescriptor:
		return v.String()
	case types.Type:
		return v.String()
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", m)
	}
}

// NativeKindDesc is a native numeric or array-element kind descriptor.
type NativeKindDesc struct {
	// Kind is the native scalar kind.
	Kind types.NativeKind
}

// DescKind returns DescNativeKind.
func (n NativeKindDesc) DescKind() DescKind { return DescNativeKind }

// Key returns the structural key.
func (n NativeKindDesc) Key() string { return "native:" + string(n.Kind) }

// String returns the kind name.
func (n NativeKindDesc) String() string { return string(n.Kind) }

// Canonical wraps an already-resolved canonical type so that resolved and
// raw annotations can mix in the same recursive call tree.
type Canonical struct {
	// Type is the canonical type node.
	Type types.Type
}

// DescKind returns DescCanonical.
func (c Canonical) DescKind() DescKind { return DescCanonical }

// Key returns the structural key.
func (c Canonical) Key() string {
	if c.Type == nil {
		return "canonical:<nil>"
	}
	return "canonical:" + c.Type.String()
}

// String returns the canonical type's textual form.
func (c Canonical) String() string {
	if c.Type == nil {
		return "<nil>"
	}
	return c.Type.String()
}
