package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

// defaultPairs are the reference queries run when no pairs file is given.
var defaultPairs = []ladder.Pair{
	{Start: "cat", End: "dog"},
	{Start: "marty", End: "curls"},
	{Start: "code", End: "data"},
	{Start: "work", End: "play"},
	{Start: "sleep", End: "awake"},
	{Start: "car", End: "cheat"},
}

// loadPairs reads a YAML list of {start, end} pairs and normalizes them.
func loadPairs(path string) ([]ladder.Pair, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pairs: %w", err)
	}
	var pairs []ladder.Pair
	if err := yaml.Unmarshal(b, &pairs); err != nil {
		return nil, fmt.Errorf("pairs: parse %s: %w", path, err)
	}
	for i := range pairs {
		pairs[i].Start = dictionary.Normalize(pairs[i].Start)
		pairs[i].End = dictionary.Normalize(pairs[i].End)
	}
	return pairs, nil
}

func newVerifyCmd(a *app) *cobra.Command {
	var pairsPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: MsgVerifyShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := defaultPairs
			if pairsPath != "" {
				var err error
				if pairs, err = loadPairs(pairsPath); err != nil {
					return err
				}
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

			out := cmd.OutOrStdout()
			failed := 0
			for i, o := range ladder.FindAll(ctx, dict, pairs, a.cfg.Batch.Workers, opts...) {
				var l ladder.Ladder
				if o.Result != nil {
					l = o.Result.Ladder
				}
				if _, err := fmt.Fprintf(out, MsgVerifyHeader, i+1, o.Start, o.End, l.Len()); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, l); err != nil {
					return err
				}

				switch {
				case errors.Is(o.Err, ladder.ErrNoLadder):
					// unconnected words are a valid answer
				case o.Err != nil:
					failed++
					a.log.Error().Err(o.Err).Str("start", o.Start).Str("end", o.End).Msg("Search did not complete")
				default:
					if err := ladder.Verify(l, o.Start, o.End, dict); err != nil {
						failed++
						a.log.Error().Err(err).Str("start", o.Start).Str("end", o.End).Msg("Ladder failed validation")
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf(MsgVerifyFailed, failed, len(pairs))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pairsPath, "pairs", "", MsgFlagPairs)

	return cmd
}
