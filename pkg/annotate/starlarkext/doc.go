// Package starlarkext lets users extend annotation resolution with
// strategies written in Starlark, without recompiling the embedding
// compiler.
//
// # Overview
//
// A strategy script defines a single function:
//
//	def resolve(desc):
//	    if desc.kind == "class" and desc.cls == "Decimal":
//	        return "float64"
//	    return None
//
// The function receives a struct describing the descriptor under
// resolution (kind, text, origin, cls, args) and returns either None,
// meaning the strategy does not handle the shape, or an annotation
// expression string, which is parsed and resolved through the owning
// registry — so scripted strategies recurse exactly like native ones.
// Any other return value is a contract violation reported as a
// TypingError.
//
// Scripts run on a sandboxed thread with printing suppressed; they see
// only the struct constructor and their input.
package starlarkext
