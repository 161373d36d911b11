package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/billie-coop/swipetabs/internal/pages"
	"github.com/spf13/cobra"
)

func pagesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the pages in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := pages.Open(opts.dir)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i := range dir.Count() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, dir.Name(i), dir.TitleAt(i))
			}
			return w.Flush()
		},
	}
}
