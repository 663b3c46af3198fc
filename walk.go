// Tree walking

package thredds

import "golang.org/x/net/html"

// Walk a dataset tree in a depth first manner calling fn for each dataset.
func walkDatasets(datasets []Dataset, fn func(Dataset) error) error {
	for _, ds := range datasets {
		if err := fn(ds); err != nil {
			return err
		}
		if coll, ok := ds.(*CollectionDataset); ok {
			if err := walkDatasets(coll.Datasets, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Walk a HTML parse tree in a depth first manner calling nodeFn for each node.
func walkNodeTree(root *html.Node, nodeFn func(node *html.Node)) {
	nodeFn(root)
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		walkNodeTree(c, nodeFn)
	}
}
