package commands

import (
	"encoding/json"
	"fmt"

	"github.com/hintwire/hintwire/pkg/annotate"
	"github.com/hintwire/hintwire/pkg/types"
	"github.com/spf13/cobra"
)

func newKindsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List primitive classes and native scalar kinds",
		Long: `List the seeded primitive host classes and the native scalar kinds
the engine recognizes, with the canonical type each one resolves to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := newRegistry()
			if err != nil {
				return err
			}

			primitives := []annotate.Class{
				annotate.ClassInt,
				annotate.ClassFloat,
				annotate.ClassComplex,
				annotate.ClassStr,
				annotate.ClassBool,
				annotate.ClassNone,
			}

			table := make(map[string]string)
			for _, cls := range primitives {
				typ, err := reg.Infer(cls)
				if err != nil {
					return err
				}
				table[cls.Name] = typ.String()
			}
			for _, kind := range types.NativeKinds() {
				typ, err := types.FromNativeKind(kind)
				if err != nil {
					return err
				}
				table[string(kind)] = typ.String()
			}

			if jsonOutput {
				out, err := json.Marshal(table)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Primitive classes:")
			for _, cls := range primitives {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-12s -> %s\n", cls.Name, table[cls.Name])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Native scalar kinds:")
			for _, kind := range types.NativeKinds() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-12s -> %s\n", kind, table[string(kind)])
			}
			return nil
		},
	}

	return cmd
}
