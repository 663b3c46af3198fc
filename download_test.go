package thredds

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Download(t *testing.T) {
	captureLogs(t)
	ts := newTestServer(t, map[string]string{
		"/thredds/catalog.xml":                testCatalog,
		"/thredds/fileServer/data/file.nc":    "netcdf data",
		"/thredds/fileServer/data/index.html": "",
	})
	client := NewClient(fastRetries)
	cat, err := client.ReadURL(context.Background(), ts.URL+"/thredds/catalog.xml")
	require.NoError(t, err)
	files := cat.FlatDatasets()

	var buf bytes.Buffer
	n, err := client.Download(context.Background(), files[0], &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len("netcdf data")), n)
	assert.Equal(t, "netcdf data", buf.String())

	_, err = client.Download(context.Background(), files[1], &buf)
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	ts.failFirst("/thredds/fileServer/data/index.html", http.StatusInternalServerError)
	_, err = client.Download(context.Background(), files[2], &buf)
	require.Error(t, err)
	assert.True(t, errors.IsRetryable(err))
}

func TestClient_Download_NoFileService(t *testing.T) {
	captureLogs(t)
	ds := NewDirectDataset(parse(t, `<dataset ID="x" urlPath="x.nc"/>`), testBaseURL, &Catalog{})

	_, err := NewClient().Download(context.Background(), ds, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}
