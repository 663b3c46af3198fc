package thredds

import (
	"context"

	"github.com/jmgilman/go/errors"
)

// A CatalogReader reads and parses the catalog found at a URL.
type CatalogReader interface {
	ReadURL(ctx context.Context, url string) (*Catalog, error)
}

// A CatalogRef is a link to another catalog.
type CatalogRef struct {
	Node
	Title string
	Href  string
	URL   string

	reader CatalogReader
}

// NewCatalogRef builds a reference from a catalogRef element. The reader is
// used by Follow and may be nil if the reference is never followed.
func NewCatalogRef(el Element, baseURL string, reader CatalogReader) *CatalogRef {
	ref := &CatalogRef{
		Node:   newNode(el),
		Title:  attr(el, "xlink:title"),
		Href:   attr(el, "xlink:href"),
		reader: reader,
	}
	ref.Name = ref.Title
	ref.URL = ResolveURL(baseURL, ref.Href)
	ref.ContentType = ContentTypeDirectory
	return ref
}

// Follow fetches and parses the referenced catalog. Nothing is cached; each
// call reads the catalog afresh.
func (ref *CatalogRef) Follow(ctx context.Context) (*Catalog, error) {
	if ref.reader == nil {
		return nil, errors.WithContext(
			errors.New(errors.CodeInvalidConfig, "catalog reference has no reader"),
			"url", ref.URL)
	}
	return ref.reader.ReadURL(ctx, ref.URL)
}
