package thredds

import (
	"strconv"

	"github.com/jmgilman/go/errors"
	"github.com/sirupsen/logrus"
)

// A Dataset is either a *DirectDataset referring to a single data file or a
// *CollectionDataset grouping further datasets.
type Dataset interface {
	// Entry returns the attributes common to all catalog entries.
	Entry() *Node

	// DatasetID returns the catalog-scoped ID of the dataset.
	DatasetID() string

	// DatasetURL returns the catalog URL selecting this dataset.
	DatasetURL() string

	// IsCollection reports whether the dataset contains further datasets.
	IsCollection() bool
}

// datasetNode holds what every kind of dataset carries.
type datasetNode struct {
	Node
	ID  string
	URL string
}

func newDatasetNode(el Element, baseURL string) datasetNode {
	ds := datasetNode{Node: newNode(el), ID: attr(el, "ID")}
	// Plain concatenation; a baseURL with a query yields a second '?'.
	ds.URL = baseURL + "?dataset=" + ds.ID
	return ds
}

func (ds *datasetNode) Entry() *Node       { return &ds.Node }
func (ds *datasetNode) DatasetID() string  { return ds.ID }
func (ds *datasetNode) DatasetURL() string { return ds.URL }
func (ds *datasetNode) IsCollection() bool { return false }

// A CollectionDataset is a container for other datasets and references.
type CollectionDataset struct {
	datasetNode
	Datasets   []Dataset
	References []*CatalogRef
}

// NewCollectionDataset builds a collection from a dataset element. Child
// datasets and references whose names match skip are left out.
func NewCollectionDataset(el Element, baseURL string, catalog *Catalog, skip SkipFunc) *CollectionDataset {
	ds := &CollectionDataset{datasetNode: newDatasetNode(el, baseURL)}
	ds.ContentType = ContentTypeDirectory
	ds.Datasets = FindDatasets(el, baseURL, catalog, skip)
	ds.References = FindReferences(el, baseURL, catalog.Reader(), skip)
	return ds
}

func (ds *CollectionDataset) IsCollection() bool { return true }

// A DirectDataset refers to a data file.
type DirectDataset struct {
	datasetNode
	Catalog     *Catalog // catalog the dataset was read from, not owned
	URLPath     string
	ServiceName string
}

// NewDirectDataset builds a data file entry from a dataset element. Missing
// or malformed metadata leaves the corresponding field empty.
func NewDirectDataset(el Element, baseURL string, catalog *Catalog) *DirectDataset {
	ds := &DirectDataset{
		datasetNode: newDatasetNode(el, baseURL),
		Catalog:     catalog,
		URLPath:     attr(el, "urlPath"),
	}
	ds.ContentType = ContentTypeNetCDF
	ds.Modified = datasetModified(el)
	ds.Bytes = datasetBytes(el)
	ds.ServiceName = datasetServiceName(el)
	return ds
}

// FileURL returns the URL the data file can be downloaded from. Only the
// children of the catalog's first service are considered and the first with
// type HTTPServer is used.
func (ds *DirectDataset) FileURL() (string, bool) {
	if ds.Catalog == nil || len(ds.Catalog.Services) == 0 {
		return "", false
	}
	for _, service := range ds.Catalog.Services[0].Children {
		if service.ServiceType == "HTTPServer" {
			return ResolveURL(service.URL, ds.URLPath), true
		}
	}
	return "", false
}

// Only dates explicitly of type "modified" are recognised.
func datasetModified(el Element) string {
	date := metadataChild(el, "date")
	if date == nil {
		return ""
	}
	if t, _ := date.Attr("type"); t != "modified" {
		return ""
	}
	return date.Text()
}

func datasetBytes(el Element) *uint64 {
	dataSize := metadataChild(el, "dataSize")
	if dataSize == nil {
		return nil
	}

	size, err := parseDataSize(dataSize)
	if err != nil {
		log.WithFields(logrus.Fields{
			"dataset": attr(el, "ID"),
			"error":   err,
		}).Warn("dataset size conversion failed")
		return nil
	}
	return &size
}

func parseDataSize(dataSize Element) (uint64, error) {
	magnitude, err := strconv.ParseFloat(dataSize.Text(), 64)
	if err != nil {
		return 0, errors.Wrapf(err, errors.CodeInvalidInput, "invalid dataSize %q", dataSize.Text())
	}
	return SizeInBytes(magnitude, attr(dataSize, "units"))
}

// metadataChild returns the child of el with the given tag, looking inside
// the dataset's metadata block when el has no such child itself.
func metadataChild(el Element, tag string) Element {
	if c := el.Child(tag); c != nil {
		return c
	}
	if metadata := el.Child("metadata"); metadata != nil {
		return metadata.Child(tag)
	}
	return nil
}

func datasetServiceName(el Element) string {
	tag := metadataChild(el, "serviceName")
	if tag == nil {
		log.WithField("dataset", attr(el, "ID")).Warn("dataset has no service name")
		return ""
	}
	return tag.Text()
}
