package syntax

import (
	"testing"

	"github.com/hintwire/hintwire/pkg/annotate"
	"github.com/hintwire/hintwire/pkg/types"
	"github.com/rs/zerolog"
)

func TestParseAndResolve(t *testing.T) {
	reg := annotate.NewRegistry(zerolog.New(nil).Level(zerolog.Disabled))

	tests := []struct {
		src  string
		want types.Type
	}{
		{"int", types.Int64},
		{"float", types.Float64},
		{"str", types.Str},
		{"None", types.None},
		{"int32", types.Scalar{Name: "int32"}},
		{"bool_", types.Bool},
		{"List[int]", types.List{Elem: types.Int64}},
		{"list[int]", types.List{Elem: types.Int64}},
		{"Dict[str, int]", types.Dict{Key: types.Str, Value: types.Int64}},
		{"Set[float]", types.Set{Elem: types.Float64}},
		{"Tuple[int, float, str]", types.TupleOf(types.Int64, types.Float64, types.Str)},
		{"Union[int, None]", types.Optional{Elem: types.Int64}},
		{"Optional[str]", types.Optional{Elem: types.Str}},
		{"List[Dict[str, int]]", types.List{Elem: types.Dict{Key: types.Str, Value: types.Int64}}},
		{"Optional[List[int]]", types.Optional{Elem: types.List{Elem: types.Int64}}},
		{
			"Annotated[int, float]",
			types.Float64,
		},
		{
			"Annotated[ndarray, float64, 2]",
			types.Array{DType: types.Float64, NDim: 2, Layout: types.LayoutAny},
		},
		{
			`Annotated[ndarray, float64, 2, "C"]`,
			types.Array{DType: types.Float64, NDim: 2, Layout: types.LayoutC},
		},
		{
			"Annotated[ndarray, int8, 1, 'F']",
			types.Array{DType: types.Scalar{Name: "int8"}, NDim: 1, Layout: types.LayoutF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			desc, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.src, err)
			}
			got, err := reg.Infer(desc)
			if err != nil {
				t.Fatalf("Infer(%q) failed: %v", tt.src, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("resolve(%q) = %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseUnknownNames(t *testing.T) {
	desc, err := Parse("Decimal")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cls, ok := desc.(annotate.Class)
	if !ok || cls.Name != "Decimal" {
		t.Fatalf("Parse(Decimal) = %#v, want a user class descriptor", desc)
	}
}

func TestParseKeepsContractErrorsInEngine(t *testing.T) {
	reg := annotate.NewRegistry(zerolog.New(nil).Level(zerolog.Disabled))

	// These parse fine; the shapes are the resolution engine's contract.
	sources := []string{
		"List[int, str]",
		"Union[int, str]",
		"Union[int, str, None]",
		"Annotated[int, float, 2]",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			desc, err := Parse(src)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", src, err)
			}
			if _, err := reg.Infer(desc); !annotate.IsTypingError(err) {
				t.Errorf("Infer(%q): want TypingError, got %v", src, err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	sources := []string{
		"",
		"List[",
		"List[]",
		"List[int",
		"[int]",
		"Dict[str int]",
		"List[int]]",
		"Annotated[2, int]",
		"Annotated[int]",
		"Decimal[int]",
		"List[3]",
		`"str"`,
		"Tuple[int,]",
		"int@",
		"'unterminated",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			if _, err := Parse(src); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", src)
			}
		})
	}
}
