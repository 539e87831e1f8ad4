package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milden6/dictionary"
)

func newDumpCmd(opts *rootOptions) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every word of the dictionary",
		Long: `Print the distinct words of the dictionary in trie order: letters
alphabetically, the apostrophe after z.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, err := opts.loadDictionary()
			if err != nil {
				return err
			}
			defer opts.unloadDictionary(d)

			w := bufio.NewWriter(cmd.OutOrStdout())
			d.Enumerate(func(_ int, word []byte, final bool) dictionary.EnumerationResult {
				s := string(word)
				if !strings.HasPrefix(s, prefix) {
					// keep descending only along the prefix itself
					if strings.HasPrefix(prefix, s) {
						return dictionary.Continue
					}
					return dictionary.Skip
				}
				if final {
					fmt.Fprintln(w, s)
				}
				return dictionary.Continue
			})
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Only print words starting with this prefix")

	return cmd
}
