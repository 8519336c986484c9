package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/editdist"
)

func newDistanceCmd(a *app) *cobra.Command {
	var within int

	cmd := &cobra.Command{
		Use:   "distance A B",
		Short: MsgDistanceShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y := dictionary.Normalize(args[0]), dictionary.Normalize(args[1])
			if cmd.Flags().Changed("within") {
				if within < 0 {
					return fmt.Errorf("%w: --within must be >= 0 (got %d)", ErrUsage, within)
				}
				ok := editdist.Within(x, y, within)
				a.log.Debug().Str("a", x).Str("b", y).Int("budget", within).Bool("within", ok).Msg("Bounded distance")
				_, err := fmt.Fprintln(cmd.OutOrStdout(), ok)
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), editdist.Distance(x, y))
			return err
		},
	}
	cmd.Flags().IntVar(&within, "within", 0, MsgFlagWithin)

	return cmd
}
