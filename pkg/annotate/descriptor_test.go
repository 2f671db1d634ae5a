package annotate

import (
	"testing"

	"github.com/hintwire/hintwire/pkg/types"
)

func TestDescriptorKeys(t *testing.T) {
	listOfInt := Generic{Origin: OriginList, Args: []TypeDescriptor{ClassInt}}

	tests := []struct {
		name string
		a, b TypeDescriptor
		same bool
	}{
		{"same class", Class{Name: "int"}, ClassInt, true},
		{"different class", ClassInt, ClassFloat, false},
		{
			"structurally equal generics",
			listOfInt,
			Generic{Origin: OriginList, Args: []TypeDescriptor{Class{Name: "int"}}},
			true,
		},
		{
			"different origin",
			listOfInt,
			Generic{Origin: OriginSet, Args: []TypeDescriptor{ClassInt}},
			false,
		},
		{
			"annotated metadata order matters",
			Annotated{Inner: ClassNDArray, Metadata: []any{ClassFloat, 2}},
			Annotated{Inner: ClassNDArray, Metadata: []any{2, ClassFloat}},
			false,
		},
		{
			"native kind vs class",
			NativeKindDesc{Kind: types.KindInt64},
			Class{Name: "int64"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Key() == tt.b.Key(); got != tt.same {
				t.Errorf("Key equality = %v, want %v (%q vs %q)", got, tt.same, tt.a.Key(), tt.b.Key())
			}
		})
	}
}

func TestDescriptorStrings(t *testing.T) {
	tests := []struct {
		desc TypeDescriptor
		want string
	}{
		{ClassInt, "int"},
		{Generic{Origin: OriginList, Args: []TypeDescriptor{ClassInt}}, "List[int]"},
		{
			Generic{Origin: OriginDict, Args: []TypeDescriptor{ClassStr, ClassInt}},
			"Dict[str, int]",
		},
		{
			Generic{Origin: OriginUnion, Args: []TypeDescriptor{ClassInt, ClassNone}},
			"Union[int, None]",
		},
		{
			Annotated{Inner: ClassNDArray, Metadata: []any{ClassFloat, 2, "C"}},
			`Annotated[ndarray, float, 2, "C"]`,
		},
		{NativeKindDesc{Kind: types.KindFloat32}, "float32"},
		{Canonical{Type: types.List{Elem: types.Int64}}, "list(int64)"},
	}

	for _, tt := range tests {
		if got := tt.desc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
