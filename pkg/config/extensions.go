package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/hintwire/hintwire/pkg/annotate"
	"github.com/hintwire/hintwire/pkg/annotate/starlarkext"
	"github.com/hintwire/hintwire/pkg/annotate/syntax"
	"gopkg.in/yaml.v3"
)

// Extensions is the parsed extensions file.
type Extensions struct {
	// Registrations are exact-match table entries.
	Registrations []Registration `yaml:"registrations" validate:"dive"`

	// Strategies are Starlark strategy scripts in priority order.
	Strategies []StrategyConfig `yaml:"strategies" validate:"dive"`

	// baseDir resolves relative strategy file paths.
	baseDir string
}

// Registration maps an annotation expression to a canonical type, given
// as another annotation expression resolved at apply time.
type Registration struct {
	// Type is the annotation to register (e.g. "Decimal").
	Type string `yaml:"type" validate:"required"`

	// As is the annotation the type resolves to (e.g. "float64").
	As string `yaml:"as" validate:"required"`
}

// StrategyConfig is a Starlark strategy, inline or from a file.
type StrategyConfig struct {
	// Name identifies the strategy in diagnostics.
	Name string `yaml:"name" validate:"required"`

	// Script is the inline Starlark source.
	Script string `yaml:"script"`

	// File is a script path relative to the extensions file.
	File string `yaml:"file"`
}

// Load reads and validates an extensions file.
func Load(path string) (*Extensions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extensions file: %w", err)
	}

	ext, err := Parse(data)
	if err != nil {
		return nil, err
	}
	ext.baseDir = filepath.Dir(path)
	return ext, nil
}

// Parse parses and validates extensions from YAML bytes. Relative
// strategy file paths resolve against the working directory.
func Parse(data []byte) (*Extensions, error) {
	var ext Extensions
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("failed to parse extensions YAML: %w", err)
	}

	if err := validator.New().Struct(&ext); err != nil {
		return nil, fmt.Errorf("invalid extensions: %w", err)
	}
	for _, s := range ext.Strategies {
		if (s.Script == "") == (s.File == "") {
			return nil, fmt.Errorf("strategy %q must set exactly one of script and file", s.Name)
		}
	}

	return &ext, nil
}

// Apply installs the extensions on reg: exact-match registrations first,
// then strategies in file order.
func (e *Extensions) Apply(reg *annotate.Registry) error {
	for _, r := range e.Registrations {
		desc, err := syntax.Parse(r.Type)
		if err != nil {
			return fmt.Errorf("registration %q: %w", r.Type, err)
		}
		asDesc, err := syntax.Parse(r.As)
		if err != nil {
			return fmt.Errorf("registration %q: %w", r.Type, err)
		}
		ct, err := reg.Infer(asDesc)
		if err != nil {
			return fmt.Errorf("registration %q: resolving %q: %w", r.Type, r.As, err)
		}
		if err := reg.Register(desc, ct); err != nil {
			return fmt.Errorf("registration %q: %w", r.Type, err)
		}
	}

	for _, s := range e.Strategies {
		script := s.Script
		if s.File != "" {
			data, err := os.ReadFile(filepath.Join(e.baseDir, s.File))
			if err != nil {
				return fmt.Errorf("strategy %q: %w", s.Name, err)
			}
			script = string(data)
		}

		strategy, err := starlarkext.NewStrategy(s.Name, script, reg)
		if err != nil {
			return fmt.Errorf("strategy %q: %w", s.Name, err)
		}
		if err := reg.RegisterStrategy(strategy); err != nil {
			return fmt.Errorf("strategy %q: %w", s.Name, err)
		}
	}

	return nil
}
