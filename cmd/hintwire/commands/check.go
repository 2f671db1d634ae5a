package commands

import (
	"encoding/json"
	"fmt"

	"github.com/hintwire/hintwire/pkg/annotate"
	"github.com/hintwire/hintwire/pkg/annotate/syntax"
	"github.com/spf13/cobra"
)

// checkResult is one annotation's probe outcome.
type checkResult struct {
	Input    string `json:"input"`
	Resolved bool   `json:"resolved"`
	Type     string `json:"type,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newCheckCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check EXPR...",
		Short: "Probe annotation expressions for resolvability",
		Long: `Check whether annotation expressions resolve, without failing on the
first unresolvable one.

Each expression is probed with the non-failing resolution entry point;
malformed annotations (unsupported union or metadata shapes) are reported
as errors rather than plain misses.`,
		Example: `  # Probe several annotations at once
  hintwire check 'List[int]' 'Union[int, str]' 'MyClass'

  # Fail the command when anything is unresolvable
  hintwire check --strict 'MyClass'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := newRegistry()
			if err != nil {
				return err
			}

			results := make([]checkResult, 0, len(args))
			unresolved := 0
			for _, src := range args {
				results = append(results, checkOne(reg, src))
				if !results[len(results)-1].Resolved {
					unresolved++
				}
			}

			if jsonOutput {
				out, err := json.Marshal(results)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			} else {
				for _, r := range results {
					switch {
					case r.Resolved:
						fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", r.Input, r.Type)
					case r.Error != "":
						fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %s\n", r.Input, r.Error)
					default:
						fmt.Fprintf(cmd.OutOrStdout(), "%s: unresolved\n", r.Input)
					}
				}
			}

			if strict && unresolved > 0 {
				return fmt.Errorf("%d of %d annotations unresolvable", unresolved, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any annotation is unresolvable")

	return cmd
}

// checkOne probes a single annotation expression.
func checkOne(reg *annotate.Registry, src string) checkResult {
	desc, err := syntax.Parse(src)
	if err != nil {
		return checkResult{Input: src, Error: err.Error()}
	}

	result, err := reg.TryInfer(desc)
	if err != nil {
		return checkResult{Input: src, Error: err.Error()}
	}
	if result == nil {
		return checkResult{Input: src}
	}
	return checkResult{Input: src, Resolved: true, Type: result.String()}
}
