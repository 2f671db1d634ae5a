// Package syntax parses textual annotation expressions into type
// descriptors.
//
// # Overview
//
// The resolution engine itself works on structured TypeDescriptor values;
// this package supplies the textual front door used by the CLI, the
// extensions file, and scripted strategies. The grammar mirrors the
// host-language annotation style:
//
//	expr    := NAME | NAME '[' arglist ']'
//	arglist := arg (',' arg)*
//	arg     := expr | INT | STRING
//
// Recognized names: the primitive classes (int, float, complex, str,
// bool, None), the native scalar kinds (int8 ... complex128, bool_),
// ndarray, and the generic constructors List, Dict, Set, Tuple, Union,
// Optional, and Annotated. Optional[X] is sugar for Union[X, None].
// Unknown names become user-class descriptors, so annotations for types
// registered via the exact-match table parse naturally.
//
// Arity and shape checking is left to the resolution engine: List[int,
// str] parses and then fails with a TypingError, keeping the contract
// errors in one place.
//
// # Usage Example
//
//	desc, err := syntax.Parse("List[Dict[str, int]]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t, err := reg.Infer(desc)
package syntax
