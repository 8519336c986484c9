// Package cli wires the wordladder commands onto cobra.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/logging"
	"github.com/katalvlaran/wordladder/ladder"
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// app carries flag values and state shared by the subcommands.
type app struct {
	cfgPath   string
	dictPath  string
	strategy  string
	verbosity int

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "wordladder",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&a.dictPath, "dict", "d", "", MsgFlagDict)
	rootCmd.PersistentFlags().StringVarP(&a.strategy, "strategy", "s", "", MsgFlagStrategy)
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newFindCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newDistanceCmd(a))

	return rootCmd
}

// setup loads configuration, applies flag overrides and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.dictPath != "" {
		cfg.Dictionary.Path = a.dictPath
	}
	if a.strategy != "" {
		cfg.Search.Strategy = a.strategy
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
	}
	a.cfg = cfg

	level := logging.ParseLevel(cfg.Log.Level)
	if a.verbosity > 0 {
		level = logging.LevelForVerbosity(a.verbosity)
	}
	logging.Setup(level, cfg.Log.Format, cmd.ErrOrStderr())
	a.log = logging.Logger("cli")
	a.log.Debug().Str("command", cmd.Name()).Msg("Command started")

	return nil
}

// loadDictionary reads the configured word list.
func (a *app) loadDictionary() (*dictionary.Dictionary, error) {
	done := logging.LogOperationStart(a.log, "load dictionary")
	defer done()

	dict, err := dictionary.LoadFile(a.cfg.Dictionary.Path)
	if err != nil {
		return nil, err
	}
	a.log.Info().Str("path", a.cfg.Dictionary.Path).Int("words", dict.Len()).Msg("Dictionary loaded")
	return dict, nil
}

// searchOptions turns the search configuration into ladder options.
func (a *app) searchOptions(ctx context.Context) ([]ladder.Option, error) {
	s, err := ladder.NewStrategy(a.cfg.Search.Strategy, a.cfg.Search.Alphabet)
	if err != nil {
		return nil, err
	}
	return []ladder.Option{
		ladder.WithContext(ctx),
		ladder.WithStrategy(s),
		ladder.WithMaxExpansions(a.cfg.Search.MaxExpansions),
		ladder.WithLogger(logging.Logger("ladder")),
	}, nil
}

// searchContext applies the configured timeout, if any.
func (a *app) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if a.cfg.Search.Timeout > 0 {
		return context.WithTimeout(parent, a.cfg.Search.Timeout)
	}
	return context.WithCancel(parent)
}
