package main

import (
	"fmt"

	"github.com/katalvlaran/seqlath/internal/config"
	"github.com/katalvlaran/seqlath/internal/render"
	"github.com/katalvlaran/seqlath/tokenize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root command has
// resolved configuration and flags.
type app struct {
	configPath string
	expandEnv  bool
	mode       string
	normalize  string
	fold       bool
	charset    string
	output     string
	color      bool
	logLevel   string
	limit      int

	cfg    config.Config
	opts   tokenize.Options
	log    *logrus.Logger
	format render.Format
}

func newRootCmd() *cobra.Command {
	_, cmd := newApp()
	return cmd
}

// newApp builds the command tree around a fresh app. The logger writes
// plain text without timestamps until setup applies the configured level.
func newApp() (*app, *cobra.Command) {
	a := &app{log: logrus.New()}
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd := &cobra.Command{
		Use:   "lcs",
		Short: "Longest common subsequences of two texts",
		Long: `lcs tokenizes two texts and computes their longest common subsequence:
its length, one solution, every distinct solution, the resulting diff or a
gapped alignment.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML configuration file")
	pf.BoolVar(&a.expandEnv, "expand-env", false, "expand $VARS in the configuration file")
	pf.StringVarP(&a.mode, "mode", "m", "", "token mode: runes, graphemes, words, lines")
	pf.StringVar(&a.normalize, "normalize", "", "unicode normalization: none, nfc, nfd, nfkc, nfkd")
	pf.BoolVar(&a.fold, "fold", false, "compare case-insensitively")
	pf.StringVar(&a.charset, "charset", "", "charset of @file inputs (default utf-8)")
	pf.StringVarP(&a.output, "output", "o", "", "output format: text, json, yaml")
	pf.BoolVar(&a.color, "color", true, "colour text output on terminals")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: error, warning, info, debug")

	rootCmd.AddCommand(
		a.lengthCmd(),
		a.oneCmd(),
		a.allCmd(),
		a.diffCmd(),
		a.alignCmd(),
		a.matrixCmd(),
	)
	return a, rootCmd
}

// setup loads the configuration file, overlays explicitly set flags,
// validates the result and prepares the logger and tokenizer options.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.Load(a.configPath, a.expandEnv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Tokenize.Mode = a.mode
	}
	if flags.Changed("normalize") {
		cfg.Tokenize.Normalize = a.normalize
	}
	if flags.Changed("fold") {
		cfg.Tokenize.Fold = a.fold
	}
	if flags.Changed("charset") {
		cfg.Tokenize.Charset = a.charset
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.output
	}
	if flags.Changed("color") {
		cfg.Output.Color = a.color
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Lookup("limit") != nil && flags.Changed("limit") {
		cfg.Output.Limit = a.limit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	a.log.SetLevel(level)

	a.format, err = render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.opts = cfg.TokenizeOptions()
	a.log.WithFields(logrus.Fields{
		"mode":      a.opts.Mode,
		"normalize": a.opts.Normalize,
		"fold":      a.opts.Fold,
		"format":    a.format,
	}).Debug("lcs configured")
	return nil
}

func (a *app) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), a.format, a.cfg.Output.Color)
}
