package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Tell whether words are in the dictionary",
		Long: `Print, for each word, whether it is in the dictionary and which
dictionary words it starts with.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := opts.loadDictionary()
			if err != nil {
				return err
			}
			defer opts.unloadDictionary(d)

			w := cmd.OutOrStdout()
			for _, word := range args {
				verdict := "misspelled"
				if d.Check(word) {
					verdict = "ok"
				}
				line := fmt.Sprintf("%s\t%s", word, verdict)
				if prefixes := d.FindAllPrefixesOf(word); len(prefixes) > 0 {
					line += "\t" + strings.Join(prefixes, " ")
				}
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
