package annotate

import (
	"fmt"

	"github.com/hintwire/hintwire/pkg/types"
)

// annotatedShapes is the contract message for malformed metadata
// wrappers. It enumerates the only supported Annotated forms.
const annotatedShapes = `invalid Annotated annotation; supported forms are:
  * Annotated[T, replacement]
      resolves to the resolution of replacement
  * Annotated[ndarray, dtype, ndim]
      resolves to array(resolution of dtype, ndim, layout "A")
  * Annotated[ndarray, dtype, ndim, layout]
      resolves to array(resolution of dtype, ndim, layout)`

// inferCanonical is the passthrough strategy: a descriptor that already
// wraps a canonical type resolves to that type unchanged. Callers mix
// already-resolved types with raw annotations in the same recursive call
// tree, so this runs first.
func (r *Registry) inferCanonical(desc TypeDescriptor) (types.Type, error) {
	if c, ok := desc.(Canonical); ok {
		return c.Type, nil
	}
	return nil, nil
}

// inferNativeKind maps native numeric and array-element kinds through the
// scalar-kind table. Unrecognized kinds fall through to later strategies.
func (r *Registry) inferNativeKind(desc TypeDescriptor) (types.Type, error) {
	nk, ok := desc.(NativeKindDesc)
	if !ok {
		return nil, nil
	}
	t, err := types.FromNativeKind(nk.Kind)
	if err != nil {
		return nil, nil
	}
	return t, nil
}

// inferGeneric handles parametrized generics and metadata wrappers:
// unions, list/dict/set/tuple containers, and the Annotated forms.
// Descriptors of any other shape fall through.
func (r *Registry) inferGeneric(desc TypeDescriptor) (types.Type, error) {
	switch d := desc.(type) {
	case Annotated:
		return r.resolveAnnotated(d)
	case Generic:
		if d.Origin == OriginUnion {
			return r.resolveUnion(d)
		}
		return r.resolveContainer(d)
	default:
		return nil, nil
	}
}

// resolveAnnotated resolves the three supported metadata-wrapper shapes.
//
// A single metadata element is an authoritative type override: the
// element is resolved as the whole result and the wrapped type is
// ignored. Two or three metadata elements around the ndarray sentinel
// build an array type: the first element resolves to the dtype, the
// second is the rank, and the optional third is the layout.
func (r *Registry) resolveAnnotated(d Annotated) (types.Type, error) {
	md := d.Metadata

	if len(md) == 1 {
		replacement, ok := asDescriptor(md[0])
		if !ok {
			return nil, NewTypingError(annotatedShapes, d)
		}
		return r.Infer(replacement)
	}

	if len(md) == 2 || len(md) == 3 {
		ndim, isInt := asInt(md[1])
		if isNDArray(d.Inner) && isInt {
			dtypeDesc, ok := asDescriptor(md[0])
			if !ok {
				return nil, NewTypingError(annotatedShapes, d)
			}
			layout := types.LayoutAny
			if len(md) == 3 {
				s, ok := md[2].(string)
				if !ok {
					return nil, NewTypingError(annotatedShapes, d)
				}
				layout = types.Layout(s)
			}
			dtype, err := r.Infer(dtypeDesc)
			if err != nil {
				return nil, err
			}
			return types.Array{DType: dtype, NDim: ndim, Layout: layout}, nil
		}
	}

	return nil, NewTypingError(annotatedShapes, d)
}

// resolveUnion resolves union-shaped generics. Only two-member unions
// where exactly one member is the None sentinel are supported; they
// resolve to an Optional of the other member.
func (r *Registry) resolveUnion(d Generic) (types.Type, error) {
	if len(d.Args) != 2 {
		return nil, NewTypingError(fmt.Sprintf(
			"cannot resolve a union of %d members; only two-member unions are supported",
			len(d.Args)), d)
	}

	first, second := d.Args[0], d.Args[1]
	switch {
	case isNone(second):
		elem, err := r.Infer(first)
		if err != nil {
			return nil, err
		}
		return types.Optional{Elem: elem}, nil
	case isNone(first):
		elem, err := r.Infer(second)
		if err != nil {
			return nil, err
		}
		return types.Optional{Elem: elem}, nil
	default:
		return nil, NewTypingError(
			"cannot resolve a union that is not an optional; exactly one member must be None", d)
	}
}

// resolveContainer resolves list-, dict-, set-, and tuple-shaped
// generics, recursing into the registry for each type argument. Generics
// with an unrecognized origin fall through.
func (r *Registry) resolveContainer(d Generic) (types.Type, error) {
	switch d.Origin {
	case OriginList:
		if len(d.Args) != 1 {
			return nil, NewTypingError(fmt.Sprintf(
				"list-like annotation takes exactly one type argument, got %d", len(d.Args)), d)
		}
		elem, err := r.Infer(d.Args[0])
		if err != nil {
			return nil, err
		}
		return types.List{Elem: elem}, nil

	case OriginDict:
		if len(d.Args) != 2 {
			return nil, NewTypingError(fmt.Sprintf(
				"dict-like annotation takes exactly two type arguments, got %d", len(d.Args)), d)
		}
		key, err := r.Infer(d.Args[0])
		if err != nil {
			return nil, err
		}
		value, err := r.Infer(d.Args[1])
		if err != nil {
			return nil, err
		}
		return types.Dict{Key: key, Value: value}, nil

	case OriginSet:
		if len(d.Args) != 1 {
			return nil, NewTypingError(fmt.Sprintf(
				"set-like annotation takes exactly one type argument, got %d", len(d.Args)), d)
		}
		elem, err := r.Infer(d.Args[0])
		if err != nil {
			return nil, err
		}
		return types.Set{Elem: elem}, nil

	case OriginTuple:
		elems := make([]types.Type, len(d.Args))
		for i, arg := range d.Args {
			elem, err := r.Infer(arg)
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return types.TupleOf(elems...), nil

	default:
		return nil, nil
	}
}

// asDescriptor converts a metadata value to a TypeDescriptor when it
// denotes a type: descriptors pass through and canonical types wrap.
func asDescriptor(m any) (TypeDescriptor, bool) {
	switch v := m.(type) {
	case TypeDescriptor:
		return v, true
	case types.Type:
		return Canonical{Type: v}, true
	default:
		return nil, false
	}
}

// asInt extracts an integer metadata value.
func asInt(m any) (int, bool) {
	n, ok := m.(int)
	return n, ok
}

// isNone reports whether desc is the None sentinel class.
func isNone(desc TypeDescriptor) bool {
	c, ok := desc.(Class)
	return ok && c == ClassNone
}

// isNDArray reports whether desc is the array-like sentinel class.
func isNDArray(desc TypeDescriptor) bool {
	c, ok := desc.(Class)
	return ok && c == ClassNDArray
}
