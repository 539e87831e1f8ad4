// Package cmd provides the CLI commands for speller.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/milden6/dictionary"
	"github.com/milden6/dictionary/internal/config"
	"github.com/milden6/dictionary/internal/logging"
	"github.com/milden6/dictionary/pkg/version"
)

// rootOptions holds the persistent flags and what is built from them.
type rootOptions struct {
	dictionary string
	configDir  string
	debug      bool
	logLevel   string

	cfg     *config.Config
	logger  *slog.Logger
	cleanup func()
}

// NewRootCmd creates the root command for the speller CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "speller",
		Short: "Check the spelling of text files against a dictionary",
		Long: `speller loads a word list into an in-memory trie and reports the words
of text files that are not in it. Letters are matched regardless of case.

The dictionary is a plain text file of lower case words separated by
whitespace.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.cleanup != nil {
				opts.cleanup()
			}
		},
	}

	cmd.SetVersionTemplate("speller version {{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&opts.dictionary, "dictionary", "d", "", "Word list to load (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", ".", "Directory holding .speller.yaml")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newLookupCmd(opts))
	cmd.AddCommand(newDumpCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// setup loads the configuration, applies flag overrides and sets up logging.
func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configDir)
	if err != nil {
		return err
	}
	if o.dictionary != "" {
		cfg.Dictionary.Path = o.dictionary
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.debug {
		cfg.Logging.Level = "debug"
	}
	o.cfg = cfg

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.FilePath = cfg.Logging.File
	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	o.logger = logger
	o.cleanup = cleanup

	logger.Debug("configuration loaded",
		slog.String("dictionary", cfg.Dictionary.Path),
		slog.Int("max_word_length", cfg.Dictionary.MaxWordLength),
		slog.Int("workers", cfg.Checker.Workers))
	return nil
}

// loadDictionary loads the configured word list and reports how long it took.
func (o *rootOptions) loadDictionary() (*dictionary.Dictionary, time.Duration, error) {
	d := dictionary.New(
		dictionary.WithMaxWordLength(o.cfg.Dictionary.MaxWordLength),
		dictionary.WithMaxNodes(o.cfg.Dictionary.MaxNodes),
	)

	start := time.Now()
	err := d.Load(o.cfg.Dictionary.Path)
	elapsed := time.Since(start)
	if err != nil {
		o.logger.Error("could not load dictionary",
			slog.String("path", o.cfg.Dictionary.Path),
			slog.String("code", dictionary.Code(err)),
			slog.Bool("fatal", dictionary.IsFatal(err)))
		return nil, elapsed, fmt.Errorf("could not load %s: %w", o.cfg.Dictionary.Path, err)
	}

	o.logger.Info("dictionary loaded",
		slog.String("path", o.cfg.Dictionary.Path),
		slog.Uint64("words", uint64(d.Size())),
		slog.Int("nodes", d.NumNodes()),
		slog.Duration("elapsed", elapsed))
	return d, elapsed, nil
}

// unloadDictionary unloads d, logging rather than failing the command.
func (o *rootOptions) unloadDictionary(d *dictionary.Dictionary) {
	if err := d.Unload(); err != nil {
		o.logger.Error("could not unload dictionary", slog.String("error", err.Error()))
	}
}
