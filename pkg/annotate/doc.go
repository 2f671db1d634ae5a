// Package annotate resolves host-language type annotations into canonical
// type nodes.
//
// # Overview
//
// The annotate package is the bridge a compiler's typing phase uses to
// understand user-written signatures. Callers hand it a TypeDescriptor (an
// opaque representation of a type annotation: a host class, a parametrized
// generic such as List[int], a metadata wrapper, a native scalar kind, or
// an already-canonical type) and get back a types.Type node.
//
// Resolution is driven by a Registry holding an exact-match table and an
// ordered list of resolution strategies. The table is consulted first; on
// a miss each strategy runs in registration order until one produces a
// result. Strategies recurse back into the Registry for nested element
// types, so arbitrarily nested annotations resolve with a single
// algorithm.
//
// # Components
//
// TypeDescriptor: closed tagged variant describing an annotation. See
// Class, Generic, Annotated, NativeKindDesc, and Canonical.
//
// Registry: the resolution engine. NewRegistry seeds the exact-match table
// with the primitive host classes and installs the three built-in
// strategies; Register and RegisterStrategy extend it; Infer and TryInfer
// resolve.
//
// TypingError: the single error kind used for every resolution failure.
//
// # Usage Example
//
//	reg := annotate.NewRegistry(logger)
//	desc := annotate.Generic{
//	    Origin: annotate.OriginList,
//	    Args:   []annotate.TypeDescriptor{annotate.ClassInt},
//	}
//	t, err := reg.Infer(desc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t) // list(int64)
//
// The registry works statically on annotations at signature-registration
// time, not dynamically on instances at runtime; inspecting the type of a
// live value is a separate concern it does not address.
package annotate
