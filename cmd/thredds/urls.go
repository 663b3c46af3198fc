package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rjw57/thredds"
	"github.com/spf13/cobra"
)

var urlsCmd = &cobra.Command{
	Use:   "urls [-depth n] catalog-url",
	Short: "print the download URLs of data files",
	Long: `
Urls crawls the catalog and prints the download URL of every data file found,
one per line. Data files the catalog offers no HTTP file service for are
skipped.

The --depth option controls how many levels of catalog references are followed
below the given catalog. The default of 0 only reads the given catalog.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		return printURLs(cmd.Context(), cmd.OutOrStdout(), client, args[0], cfg.GetInt("urls.depth"))
	},
}

func init() {
	urlsCmd.Flags().Int("depth", 0, "levels of catalog references to follow")
	if err := cfg.BindPFlag("urls.depth", urlsCmd.Flags().Lookup("depth")); err != nil {
		panic(err)
	}
}

func printURLs(ctx context.Context, w io.Writer, client *thredds.Client, url string, depth int) error {
	return client.Crawl(ctx, url, depth, func(ds *thredds.DirectDataset) error {
		if fileURL, ok := ds.FileURL(); ok {
			fmt.Fprintln(w, fileURL)
		}
		return nil
	})
}
