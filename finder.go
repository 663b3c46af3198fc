package thredds

import (
	"regexp"

	"github.com/jmgilman/go/errors"
)

// A SkipFunc reports whether the dataset or catalog reference with the given
// name should be left out of a catalog. A nil SkipFunc skips nothing.
type SkipFunc func(name string) bool

// SkipPatterns returns a SkipFunc skipping every name matched by one of the
// given regular expressions.
func SkipPatterns(patterns ...string) (SkipFunc, error) {
	var res []*regexp.Regexp
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeInvalidInput, "invalid skip pattern %q", p)
		}
		res = append(res, re)
	}

	return func(name string) bool {
		for _, re := range res {
			if re.MatchString(name) {
				return true
			}
		}
		return false
	}, nil
}

func (skip SkipFunc) skips(name string) bool {
	return skip != nil && skip(name)
}

// FindDatasets classifies the dataset elements directly below el. A dataset
// holding further datasets or references is a collection, one with a
// urlPath is a data file. Anything else is treated as an empty collection.
func FindDatasets(el Element, baseURL string, catalog *Catalog, skip SkipFunc) []Dataset {
	var datasets []Dataset
	for _, child := range el.Children("dataset") {
		if skip.skips(attr(child, "name")) {
			continue
		}

		hasChildren := child.Child("dataset") != nil || child.Child("catalogRef") != nil
		_, hasURLPath := child.Attr("urlPath")
		if !hasChildren && hasURLPath {
			datasets = append(datasets, NewDirectDataset(child, baseURL, catalog))
		} else {
			datasets = append(datasets, NewCollectionDataset(child, baseURL, catalog, skip))
		}
	}
	return datasets
}

// FindReferences builds the catalog references directly below el.
func FindReferences(el Element, baseURL string, reader CatalogReader, skip SkipFunc) []*CatalogRef {
	var refs []*CatalogRef
	for _, child := range el.Children("catalogRef") {
		ref := NewCatalogRef(child, baseURL, reader)
		if skip.skips(ref.Title) {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}
