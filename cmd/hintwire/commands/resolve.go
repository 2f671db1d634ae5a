package commands

import (
	"encoding/json"
	"fmt"

	"github.com/hintwire/hintwire/pkg/annotate/syntax"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve EXPR",
		Short: "Resolve an annotation expression to its canonical type",
		Long: `Resolve a type annotation expression and print the canonical type.

Resolution consults the exact-match table first, then the resolution
strategies in priority order. Unresolvable or malformed annotations fail
with a typing error.`,
		Example: `  # Resolve a nested container annotation
  hintwire resolve 'List[Dict[str, int]]'

  # Resolve an array metadata wrapper
  hintwire resolve 'Annotated[ndarray, float64, 2, "C"]'

  # Resolve with user extensions applied
  hintwire resolve -c extensions.yaml 'Decimal'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := newRegistry()
			if err != nil {
				return err
			}

			desc, err := syntax.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse annotation: %w", err)
			}

			log.Debug().Str("annotation", desc.String()).Msg("Resolving annotation")

			result, err := reg.Infer(desc)
			if err != nil {
				return err
			}

			if jsonOutput {
				out, err := json.Marshal(map[string]string{
					"input": args[0],
					"type":  result.String(),
					"kind":  string(result.TypeKind()),
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	return cmd
}
