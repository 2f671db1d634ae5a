package annotate_test

import (
	"fmt"

	"github.com/hintwire/hintwire/pkg/annotate"
	"github.com/hintwire/hintwire/pkg/types"
	"github.com/rs/zerolog"
)

func Example() {
	reg := annotate.NewRegistry(zerolog.New(nil).Level(zerolog.Disabled))

	// A nested container annotation: List[Dict[str, int]].
	desc := annotate.Generic{
		Origin: annotate.OriginList,
		Args: []annotate.TypeDescriptor{
			annotate.Generic{
				Origin: annotate.OriginDict,
				Args:   []annotate.TypeDescriptor{annotate.ClassStr, annotate.ClassInt},
			},
		},
	}

	t, err := reg.Infer(desc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(t)
	// Output: list(dict(str, int64))
}

func ExampleRegistry_Register() {
	reg := annotate.NewRegistry(zerolog.New(nil).Level(zerolog.Disabled))

	// Teach the registry a project-specific class.
	decimal := annotate.Class{Name: "Decimal"}
	if err := reg.Register(decimal, types.Float64); err != nil {
		fmt.Println("error:", err)
		return
	}

	t, _ := reg.Infer(decimal)
	fmt.Println(t)
	// Output: float64
}

func ExampleRegistry_RegisterStrategy() {
	reg := annotate.NewRegistry(zerolog.New(nil).Level(zerolog.Disabled))

	// A strategy for an open-ended family of classes.
	series := annotate.Class{Name: "Series"}
	_ = reg.RegisterStrategy(func(desc annotate.TypeDescriptor) (types.Type, error) {
		if c, ok := desc.(annotate.Class); ok && c == series {
			return types.List{Elem: types.Float64}, nil
		}
		return nil, nil
	})

	t, _ := reg.Infer(series)
	fmt.Println(t)
	// Output: list(float64)
}

func ExampleRegistry_TryInfer() {
	reg := annotate.NewRegistry(zerolog.New(nil).Level(zerolog.Disabled))

	// Probe resolvability without failing the enclosing signature.
	t, err := reg.TryInfer(annotate.Class{Name: "Mystery"})
	fmt.Println(t, err)
	// Output: <nil> <nil>
}
