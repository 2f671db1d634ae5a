package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hintwire/hintwire/pkg/annotate"
	"github.com/hintwire/hintwire/pkg/types"
	"github.com/rs/zerolog"
)

func newTestRegistry() *annotate.Registry {
	return annotate.NewRegistry(zerolog.New(nil).Level(zerolog.Disabled))
}

func TestLoadAndApply(t *testing.T) {
	dir := t.TempDir()

	starPath := filepath.Join(dir, "frames.star")
	starScript := `
def resolve(desc):
    if desc.kind == "class" and desc.cls == "Frame":
        return "Dict[str, Annotated[ndarray, float64, 2]]"
    return None
`
	if err := os.WriteFile(starPath, []byte(starScript), 0o644); err != nil {
		t.Fatalf("failed to write strategy script: %v", err)
	}

	yamlSrc := `
registrations:
  - type: "Decimal"
    as: "float64"
  - type: "Timestamp"
    as: "int64"
strategies:
  - name: "shapes"
    script: |
      def resolve(desc):
          if desc.kind == "class" and desc.cls == "Shape":
              return "Tuple[int, int]"
          return None
  - name: "frames"
    file: "frames.star"
`
	path := filepath.Join(dir, "extensions.yaml")
	if err := os.WriteFile(path, []byte(yamlSrc), 0o644); err != nil {
		t.Fatalf("failed to write extensions file: %v", err)
	}

	ext, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	reg := newTestRegistry()
	if err := ext.Apply(reg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	tests := []struct {
		class string
		want  types.Type
	}{
		{"Decimal", types.Float64},
		{"Timestamp", types.Int64},
		{"Shape", types.TupleOf(types.Int64, types.Int64)},
		{
			"Frame",
			types.Dict{
				Key:   types.Str,
				Value: types.Array{DType: types.Float64, NDim: 2, Layout: types.LayoutAny},
			},
		},
	}
	for _, tt := range tests {
		got, err := reg.Infer(annotate.Class{Name: tt.class})
		if err != nil {
			t.Fatalf("Infer(%s) failed: %v", tt.class, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("Infer(%s) = %s, want %s", tt.class, got, tt.want)
		}
	}
}

func TestRegistrationsBeatStrategies(t *testing.T) {
	// An exact-match registration wins over a strategy that also claims
	// the class, regardless of file order.
	yamlSrc := `
registrations:
  - type: "Decimal"
    as: "float64"
strategies:
  - name: "greedy"
    script: |
      def resolve(desc):
          if desc.cls == "Decimal":
              return "str"
          return None
`
	ext, err := Parse([]byte(yamlSrc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	reg := newTestRegistry()
	if err := ext.Apply(reg); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	got, err := reg.Infer(annotate.Class{Name: "Decimal"})
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}
	if !got.Equal(types.Float64) {
		t.Errorf("Infer(Decimal) = %s, want float64 from the registration", got)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "registration missing as",
			src: `
registrations:
  - type: "Decimal"
`,
		},
		{
			name: "strategy missing name",
			src: `
strategies:
  - script: "def resolve(desc): return None"
`,
		},
		{
			name: "strategy with both script and file",
			src: `
strategies:
  - name: "both"
    script: "def resolve(desc): return None"
    file: "x.star"
`,
		},
		{
			name: "strategy with neither script nor file",
			src: `
strategies:
  - name: "neither"
`,
		},
		{
			name: "not yaml",
			src:  "registrations: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src)); err == nil {
				t.Error("Parse succeeded, want error")
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	t.Run("unresolvable as expression", func(t *testing.T) {
		ext, err := Parse([]byte(`
registrations:
  - type: "Decimal"
    as: "NoSuchType"
`))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if err := ext.Apply(newTestRegistry()); err == nil {
			t.Error("Apply succeeded, want error for unresolvable target type")
		}
	})

	t.Run("missing strategy file", func(t *testing.T) {
		ext, err := Parse([]byte(`
strategies:
  - name: "ghost"
    file: "does-not-exist.star"
`))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if err := ext.Apply(newTestRegistry()); err == nil {
			t.Error("Apply succeeded, want error for missing script file")
		}
	})
}
