package starlarkext

import (
	"fmt"

	"github.com/hintwire/hintwire/pkg/annotate"
	"github.com/hintwire/hintwire/pkg/annotate/syntax"
	"github.com/hintwire/hintwire/pkg/types"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// NewStrategy compiles a Starlark strategy script and returns it as a
// resolution strategy bound to reg. The script must define a global
// resolve(desc) function; compilation errors and a missing resolve are
// reported immediately, before the strategy is registered.
func NewStrategy(name, script string, reg *annotate.Registry) (annotate.Strategy, error) {
	thread := newThread(name)
	predeclared := starlark.StringDict{
		"struct": starlarkstruct.Default,
	}

	globals, err := starlark.ExecFile(thread, name+".star", script, predeclared)
	if err != nil {
		return nil, fmt.Errorf("starlark strategy %q failed to load: %w", name, err)
	}

	fn, ok := globals["resolve"].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("starlark strategy %q does not define a resolve function", name)
	}

	return func(desc annotate.TypeDescriptor) (types.Type, error) {
		result, err := starlark.Call(newThread(name), fn, starlark.Tuple{descStruct(desc)}, nil)
		if err != nil {
			return nil, annotate.WrapTypingError(
				fmt.Sprintf("starlark strategy %q failed", name), desc, err)
		}

		switch v := result.(type) {
		case starlark.NoneType:
			return nil, nil
		case starlark.String:
			replacement, err := syntax.Parse(string(v))
			if err != nil {
				return nil, annotate.WrapTypingError(
					fmt.Sprintf("starlark strategy %q returned an unparseable type expression", name),
					desc, err)
			}
			return reg.Infer(replacement)
		default:
			return nil, annotate.NewTypingError(
				fmt.Sprintf("starlark strategy %q returned %s; expected None or a type expression string",
					name, result.Type()), desc)
		}
	}, nil
}

// newThread creates a sandboxed thread with printing suppressed.
func newThread(name string) *starlark.Thread {
	return &starlark.Thread{
		Name: "hintwire/" + name,
		Print: func(_ *starlark.Thread, _ string) {
			// Suppress print from strategy scripts.
		},
	}
}

// descStruct builds the struct handed to resolve(): kind and text for
// every descriptor, plus cls for classes and origin/args for generics.
func descStruct(desc annotate.TypeDescriptor) *starlarkstruct.Struct {
	fields := starlark.StringDict{
		"kind":   starlark.String(desc.DescKind()),
		"text":   starlark.String(desc.String()),
		"cls":    starlark.String(""),
		"origin": starlark.String(""),
		"args":   starlark.NewList(nil),
	}

	switch d := desc.(type) {
	case annotate.Class:
		fields["cls"] = starlark.String(d.Name)
	case annotate.Generic:
		fields["origin"] = starlark.String(d.Origin)
		args := make([]starlark.Value, len(d.Args))
		for i, a := range d.Args {
			args[i] = starlark.String(a.String())
		}
		fields["args"] = starlark.NewList(args)
	}

	return starlarkstruct.FromStringDict(starlarkstruct.Default, fields)
}
