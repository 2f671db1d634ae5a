// Package types defines the canonical type system that annotation
// resolution targets.
//
// # Overview
//
// The types package is the output side of HintWire: every annotation the
// engine resolves ends up as one of the canonical type nodes defined here.
// The node set is closed and mirrors what a code-generating compiler needs
// to describe signatures: scalars, optionals, homogeneous containers,
// fixed-arity tuples, and n-dimensional arrays.
//
// # Components
//
// Type: the interface every canonical node implements. Nodes are immutable
// values; they are constructed once and compared structurally with Equal.
//
// Scalar, Optional, List, Dict, Set, Tuple, Array: the node variants.
//
// NativeKind and FromNativeKind: the mapping from native numeric and
// array-element kinds (int8 through complex128) to canonical scalar types.
//
// Validate: structural validation used by the resolution engine to reject
// malformed nodes produced by misbehaving custom strategies.
//
// # Usage Example
//
//	elem := types.Dict{Key: types.Str, Value: types.Int64}
//	t := types.List{Elem: elem}
//	fmt.Println(t) // list(dict(str, int64))
package types
