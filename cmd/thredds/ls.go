package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/rjw57/thredds"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls catalog-url",
	Short: "list the contents of a catalog",
	Long: `
Ls reads a single catalog and prints its services, references to further
catalogs and datasets. Nested services and datasets are indented below their
parent. For each data file the size, modification date and download URL are
printed when the catalog provides them.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		cat, err := client.ReadURL(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return listCatalog(cmd.OutOrStdout(), cat)
	},
}

func listCatalog(w io.Writer, cat *thredds.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "catalog\t%v\t%v\n", cat.Name, cat.URL)
	for _, s := range cat.Services {
		listService(tw, s, 1)
	}
	for _, ref := range cat.References {
		listReference(tw, ref, 1)
	}
	for _, ds := range cat.Datasets {
		listDataset(tw, ds, 1)
	}
	return tw.Flush()
}

func listService(w io.Writer, s *thredds.Service, depth int) {
	fmt.Fprintf(w, "%vservice\t%v\t%v\t%v\n", indent(depth), s.Name, s.ServiceType, s.URL)
	for _, child := range s.Children {
		listService(w, child, depth+1)
	}
}

func listReference(w io.Writer, ref *thredds.CatalogRef, depth int) {
	fmt.Fprintf(w, "%vcatalogRef\t%v\t%v\n", indent(depth), ref.Name, ref.URL)
}

func listDataset(w io.Writer, ds thredds.Dataset, depth int) {
	switch ds := ds.(type) {
	case *thredds.CollectionDataset:
		fmt.Fprintf(w, "%vcollection\t%v\t%v\n", indent(depth), ds.Name, ds.ID)
		for _, ref := range ds.References {
			listReference(w, ref, depth+1)
		}
		for _, child := range ds.Datasets {
			listDataset(w, child, depth+1)
		}
	case *thredds.DirectDataset:
		size := "-"
		if ds.Bytes != nil {
			size = humanize.IBytes(*ds.Bytes)
		}
		modified := ds.Modified
		if modified == "" {
			modified = "-"
		}
		fileURL, ok := ds.FileURL()
		if !ok {
			fileURL = "-"
		}
		fmt.Fprintf(w, "%vdataset\t%v\t%v\t%v\t%v\n", indent(depth), ds.Name, size, modified, fileURL)
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
