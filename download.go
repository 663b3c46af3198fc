package thredds

import (
	"context"
	"io"
	"net/http"

	"github.com/jmgilman/go/errors"
)

// Download copies the data file of ds to output and returns the number of
// bytes written. The file is fetched once; callers wanting retries should
// check errors.IsRetryable on the returned error.
func (c *Client) Download(ctx context.Context, ds *DirectDataset, output io.Writer) (int64, error) {
	fileURL, ok := ds.FileURL()
	if !ok {
		return 0, errors.WithContext(
			errors.New(errors.CodeNotFound, "catalog has no HTTPServer service for dataset"),
			"dataset", ds.ID)
	}

	log.WithField("url", fileURL).Debug("Downloading")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return 0, errors.WithContext(errors.Wrap(err, errors.CodeInvalidInput, "invalid file URL"), "url", fileURL)
	}
	if c.opts.userAgent != "" {
		req.Header.Set("User-Agent", c.opts.userAgent)
	}

	resp, err := c.opts.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithContext(errors.Wrap(err, errors.CodeNetwork, "downloading file"), "url", fileURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.WithContextMap(
			errors.Newf(statusCode(resp.StatusCode), "error downloading %v: HTTP %d", fileURL, resp.StatusCode),
			map[string]interface{}{"url": fileURL, "status": resp.StatusCode})
	}

	n, err := io.Copy(output, resp.Body)
	if err != nil {
		return n, errors.WithContext(errors.Wrap(err, errors.CodeNetwork, "copying file"), "url", fileURL)
	}
	return n, nil
}
