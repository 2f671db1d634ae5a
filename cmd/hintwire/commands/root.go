package commands

import (
	"context"
	"fmt"

	"github.com/hintwire/hintwire/pkg/annotate"
	"github.com/hintwire/hintwire/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
	jsonOutput bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hintwire",
		Short: "HintWire - Type Annotation Resolution Engine",
		Long: `HintWire resolves host-language type annotations into canonical
compiler type nodes.

Features:
  - Exact-match table plus ordered resolution strategies
  - Nested generics, optional unions, and array metadata wrappers
  - User extensions via a YAML file: registrations and Starlark strategies
  - Resolvability probing without failing the enclosing signature`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "extensions file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Add subcommands
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newKindsCommand())

	return rootCmd
}

// newRegistry builds a registry with the extensions file applied, when
// one is configured.
func newRegistry() (*annotate.Registry, error) {
	reg := annotate.NewRegistry(log.Logger)

	if configPath == "" {
		return reg, nil
	}

	ext, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load extensions: %w", err)
	}
	if err := ext.Apply(reg); err != nil {
		return nil, fmt.Errorf("failed to apply extensions: %w", err)
	}

	log.Debug().
		Str("path", configPath).
		Int("registrations", len(ext.Registrations)).
		Int("strategies", len(ext.Strategies)).
		Msg("Applied extensions")
	return reg, nil
}
