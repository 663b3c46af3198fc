package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover page-url",
	Short: "print the catalogs linked from an HTML page",
	Long: `
Discover fetches an HTML page, such as a project's data portal or the HTML
view of a THREDDS catalog, and prints the URL of every catalog it links to.
Links to the HTML view of a catalog are printed as the URL of its XML
document so that they can be passed to the other commands.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		catalogs, err := client.DiscoverCatalogs(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, c := range catalogs {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}
