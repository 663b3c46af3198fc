package thredds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://example.org/thredds/catalog.xml"

const testCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<catalog xmlns="http://www.unidata.ucar.edu/namespaces/thredds/InvCatalog/v1.0"
         xmlns:xlink="http://www.w3.org/1999/xlink" name="Test catalog" version="1.0.1">
  <service name="all" serviceType="Compound" base="">
    <service name="odap" serviceType="OPENDAP" base="/thredds/dodsC/" />
    <service name="http" serviceType="HTTPServer" base="/thredds/fileServer/" />
  </service>
  <dataset name="Test" ID="test">
    <metadata inherited="true">
      <serviceName>all</serviceName>
    </metadata>
    <dataset name="file.nc" ID="test/file.nc" urlPath="data/file.nc">
      <serviceName>all</serviceName>
      <dataSize units="Mbytes">10</dataSize>
      <date type="modified">2015-01-01T00:00:00Z</date>
    </dataset>
    <dataset name="other.nc" ID="test/other.nc" urlPath="data/other.nc">
      <metadata>
        <serviceName>http</serviceName>
      </metadata>
      <dataSize units="Kbytes">1.5</dataSize>
    </dataset>
    <dataset name="index.html" ID="test/index.html" urlPath="data/index.html" />
    <catalogRef xlink:href="sub/catalog.xml" xlink:title="Sub catalog" name="" />
  </dataset>
  <catalogRef xlink:href="/thredds/other/catalog.xml" xlink:title="Other" name="" />
</catalog>
`

// parse parses an XML fragment and returns its root element.
func parse(t *testing.T, doc string) Element {
	t.Helper()
	el, err := ParseElement(strings.NewReader(doc))
	require.NoError(t, err)
	return el
}

// readTestCatalog reads testCatalog located at testBaseURL.
func readTestCatalog(t *testing.T, opts ...Option) *Catalog {
	t.Helper()
	cat, err := ReadCatalog(strings.NewReader(testCatalog), testBaseURL, opts...)
	require.NoError(t, err)
	return cat
}
