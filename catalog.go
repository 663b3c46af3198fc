package thredds

import (
	"io"

	"github.com/jmgilman/go/errors"
)

// A Catalog is a parsed THREDDS catalog document.
type Catalog struct {
	URL        string // base URL relative references are resolved against
	Name       string
	Version    string
	Services   []*Service
	Datasets   []Dataset
	References []*CatalogRef

	reader CatalogReader
}

// ReadCatalog parses the catalog document read from r. The baseURL is the
// location the document was fetched from.
func ReadCatalog(r io.Reader, baseURL string, opts ...Option) (*Catalog, error) {
	root, err := ParseElement(r)
	if err != nil {
		return nil, errors.WithContext(err, "url", baseURL)
	}
	return NewCatalog(root, baseURL, opts...)
}

// NewCatalog builds a catalog from the root element of a catalog document.
// Services are built first so that datasets can refer to them.
func NewCatalog(root Element, baseURL string, opts ...Option) (*Catalog, error) {
	if root.Tag() != "catalog" {
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "expected catalog element, got %q", root.Tag()),
			"url", baseURL)
	}

	o := newOptions(opts)
	cat := &Catalog{
		URL:     baseURL,
		Name:    attr(root, "name"),
		Version: attr(root, "version"),
		reader:  o.reader,
	}
	for _, el := range root.Children("service") {
		cat.Services = append(cat.Services, NewService(el, baseURL))
	}
	cat.Datasets = FindDatasets(root, baseURL, cat, o.skip)
	cat.References = FindReferences(root, baseURL, cat.reader, o.skip)
	return cat, nil
}

// Reader returns the reader used to follow references of this catalog.
func (cat *Catalog) Reader() CatalogReader {
	if cat == nil {
		return nil
	}
	return cat.reader
}

// Service returns the first service with the given name, searching nested
// services depth first.
func (cat *Catalog) Service(name string) *Service {
	var find func([]*Service) *Service
	find = func(services []*Service) *Service {
		for _, s := range services {
			if s.Name == name {
				return s
			}
			if found := find(s.Children); found != nil {
				return found
			}
		}
		return nil
	}
	return find(cat.Services)
}

// Walk calls fn for every dataset in the catalog, depth first and in document
// order. Walking stops at the first error returned by fn.
func (cat *Catalog) Walk(fn func(Dataset) error) error {
	return walkDatasets(cat.Datasets, fn)
}

// FlatDatasets returns all data files of the catalog, including those nested
// in collections.
func (cat *Catalog) FlatDatasets() []*DirectDataset {
	var out []*DirectDataset
	cat.Walk(func(ds Dataset) error {
		if direct, ok := ds.(*DirectDataset); ok {
			out = append(out, direct)
		}
		return nil
	})
	return out
}

// FlatReferences returns all catalog references, both at the top level and
// inside collections.
func (cat *Catalog) FlatReferences() []*CatalogRef {
	out := append([]*CatalogRef{}, cat.References...)
	cat.Walk(func(ds Dataset) error {
		if coll, ok := ds.(*CollectionDataset); ok {
			out = append(out, coll.References...)
		}
		return nil
	})
	return out
}

// DownloadURLs returns the file URLs of all data files that can be
// downloaded.
func (cat *Catalog) DownloadURLs() []string {
	var urls []string
	for _, ds := range cat.FlatDatasets() {
		if u, ok := ds.FileURL(); ok {
			urls = append(urls, u)
		}
	}
	return urls
}
