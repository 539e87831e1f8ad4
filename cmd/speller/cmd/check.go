package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/milden6/dictionary/internal/checker"
)

// benchmarks are the timings printed after the reports.
type benchmarks struct {
	Load   time.Duration `json:"load_ns"`
	Check  time.Duration `json:"check_ns"`
	Size   time.Duration `json:"size_ns"`
	Unload time.Duration `json:"unload_ns"`
}

func (b benchmarks) total() time.Duration {
	return b.Load + b.Check + b.Size + b.Unload
}

type checkOutput struct {
	Reports    []*checker.Report `json:"reports"`
	Dictionary uint              `json:"words_in_dictionary"`
	Cache      checker.Stats     `json:"cache"`
	Timing     benchmarks        `json:"timing"`
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check <text>...",
		Short: "Report the misspelled words of text files",
		Long: `Load the dictionary, check every text file against it and print the
misspelled words of each, followed by word counts and timings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if _, err := os.Stat(path); err != nil {
					return fmt.Errorf("could not open %s: %w", path, err)
				}
			}

			d, loadTime, err := opts.loadDictionary()
			if err != nil {
				return err
			}

			c, err := checker.New(d, checker.Options{
				MaxWordLength: opts.cfg.Dictionary.MaxWordLength,
				CacheSize:     opts.cfg.Checker.CacheSize,
				Workers:       opts.cfg.Checker.Workers,
				Encoding:      opts.cfg.Checker.Encoding,
				Logger:        opts.logger,
			})
			if err != nil {
				opts.unloadDictionary(d)
				return err
			}

			out := checkOutput{Timing: benchmarks{Load: loadTime}}

			start := time.Now()
			out.Reports, err = c.CheckFiles(cmd.Context(), args)
			out.Timing.Check = time.Since(start)
			if err != nil {
				opts.unloadDictionary(d)
				return err
			}

			start = time.Now()
			out.Dictionary = d.Size()
			out.Timing.Size = time.Since(start)

			start = time.Now()
			err = d.Unload()
			out.Timing.Unload = time.Since(start)
			if err != nil {
				return fmt.Errorf("could not unload %s: %w", opts.cfg.Dictionary.Path, err)
			}

			out.Cache = c.Stats()

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return printCheck(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output reports as JSON")

	return cmd
}

func printCheck(w io.Writer, out checkOutput) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	for _, report := range out.Reports {
		if len(out.Reports) > 1 {
			printf("%s\n\n", report.Name)
		}
		printf("MISSPELLED WORDS\n\n")
		for _, word := range report.Misspelled {
			printf("%s\n", word)
		}
		printf("\nWORDS MISSPELLED:     %d\n", len(report.Misspelled))
		printf("WORDS IN TEXT:        %d\n\n", report.Words)
	}

	printf("WORDS IN DICTIONARY:  %d\n", out.Dictionary)
	printf("TIME IN load:         %.2f\n", out.Timing.Load.Seconds())
	printf("TIME IN check:        %.2f\n", out.Timing.Check.Seconds())
	printf("TIME IN size:         %.2f\n", out.Timing.Size.Seconds())
	printf("TIME IN unload:       %.2f\n", out.Timing.Unload.Seconds())
	printf("TIME IN TOTAL:        %.2f\n", out.Timing.total().Seconds())
	return err
}
