package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

func newFindCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "find START END",
		Short: MsgFindShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case OutputText, OutputYAML, OutputJSON:
			default:
				return fmt.Errorf("%w: unknown output format %q", ErrUsage, output)
			}

			dict, err := a.loadDictionary()
			if err != nil {
				return err
			}

			ctx, cancel := a.searchContext(cmd.Context())
			defer cancel()
			opts, err := a.searchOptions(ctx)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUsage, err)
			}

			pair := ladder.Pair{Start: dictionary.Normalize(args[0]), End: dictionary.Normalize(args[1])}
			res, err := ladder.Find(pair.Start, pair.End, dict, opts...)
			if rerr := render(cmd.OutOrStdout(), output, newReport(pair, res, err)); rerr != nil {
				return rerr
			}
			if errors.Is(err, ladder.ErrInvalidInput) {
				return fmt.Errorf("%w: %v", ErrUsage, err)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", OutputText, MsgFlagOutput)

	return cmd
}
