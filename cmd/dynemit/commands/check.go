package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dynemit/cpu"
	"github.com/cwbudde/algo-dynemit/internal/vecmath"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the exported operations and every executable variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := cpu.DetectLevel()
			results := vecmath.SelfCheck(level)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "SIMD level: %s\n\n", level)
			fmt.Fprintf(tw, "Variant\tOperation\tResult\n")
			fmt.Fprintf(tw, "-------\t---------\t------\n")

			failed := 0
			for _, r := range results {
				status := "OK"
				if !r.OK {
					failed++
					status = fmt.Sprintf("FAIL at %d: got %g, want %g", r.Index, r.Got, r.Want)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Variant, r.Op, status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "\nAll %d checks passed.\n", len(results))
			return err
		},
	}
}
