// Package thredds provides a client-side view of THREDDS catalogs: the XML
// documents scientific data servers publish to describe their services,
// datasets and links to further catalogs.
//
// A catalog is read into a tree of typed nodes. Services describe how data
// can be accessed, catalog references point at other catalogs, collection
// datasets group further datasets and direct datasets refer to actual data
// files whose download URL can be resolved against the catalog's services.
//
// See the catalog primer at
// https://docs.unidata.ucar.edu/tds/current/userguide/basic_client_catalog.html
package thredds

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Default fetch strategy
var DefaultFetchStrategy = FetchStrategy{
	MaximumRetries: 5,
	RetrySleep:     2 * time.Second,
	FetchTimeout:   1 * time.Minute,
}

// Maximum number of catalogs fetched at once while crawling.
const MaximumSimultaneousFetches = 5

// A FetchStrategy controls how documents are fetched from a server.
type FetchStrategy struct {
	MaximumRetries int           // Number of retries after the first attempt fails
	RetrySleep     time.Duration // Initial sleep between attempts, grows exponentially
	FetchTimeout   time.Duration // Timeout of a single attempt (or 0 for none)
}

var log logrus.FieldLogger = logrus.StandardLogger().WithField("component", "thredds")

// SetLogger replaces the logger used by the package. Passing nil restores
// the default.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger().WithField("component", "thredds")
	}
	log = l
}
