// Network-utilities

package thredds

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmgilman/go/errors"
	"github.com/sirupsen/logrus"
)

// A Client reads catalogs from a THREDDS server.
type Client struct {
	opts *options
}

// NewClient returns a client configured by opts.
func NewClient(opts ...Option) *Client {
	return &Client{opts: newOptions(opts)}
}

// ReadURL fetches and parses the catalog at url. THREDDS publishes an HTML
// view of every catalog next to the XML one; a URL of the HTML view is read
// from the XML document instead.
func (c *Client) ReadURL(ctx context.Context, url string) (*Catalog, error) {
	url = CatalogXMLURL(url)
	body, finalURL, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return ReadCatalog(bytes.NewReader(body), finalURL,
		WithSkip(c.opts.skip), WithReader(c))
}

// CatalogXMLURL returns the URL of the XML document for a catalog given the
// URL of either its XML or its HTML view.
func CatalogXMLURL(url string) string {
	if strings.HasSuffix(url, ".html") {
		return strings.TrimSuffix(url, ".html") + ".xml"
	}
	return url
}

// Fetch data from a URL, retrying according to the client's fetch strategy.
// Returns the body and the URL the body was finally served from. An error is
// returned if the fetch does not end with HTTP 200.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, string, error) {
	strategy := c.opts.strategy

	b := backoff.NewExponentialBackOff()
	if strategy.RetrySleep > 0 {
		b.InitialInterval = strategy.RetrySleep
	}
	var policy backoff.BackOff = b
	if strategy.MaximumRetries >= 0 {
		policy = backoff.WithMaxRetries(b, uint64(strategy.MaximumRetries))
	}

	var (
		body     []byte
		finalURL string
	)
	err := backoff.RetryNotify(
		func() error {
			var err error
			body, finalURL, err = c.fetchOnce(ctx, url)
			if err != nil && !errors.IsRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		},
		backoff.WithContext(policy, ctx),
		func(err error, d time.Duration) {
			log.WithFields(logrus.Fields{"url": url, "error": err}).
				Warnf("fetch failed, retrying in %v", d)
		},
	)
	if err != nil {
		return nil, "", err
	}
	return body, finalURL, nil
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, string, error) {
	if timeout := c.opts.strategy.FetchTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.WithField("url", url).Debug("Fetching")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidInput, "invalid catalog URL"), "url", url)
	}
	if c.opts.userAgent != "" {
		req.Header.Set("User-Agent", c.opts.userAgent)
	}

	resp, err := c.opts.httpClient.Do(req)
	if err != nil {
		code := errors.CodeNetwork
		if ctx.Err() == context.DeadlineExceeded {
			code = errors.CodeTimeout
		}
		return nil, "", errors.WithContext(errors.Wrap(err, code, "fetching catalog"), "url", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.WithContextMap(
			errors.Newf(statusCode(resp.StatusCode), "error fetching %v: HTTP %d", url, resp.StatusCode),
			map[string]interface{}{"url": url, "status": resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.WithContext(errors.Wrap(err, errors.CodeNetwork, "reading response"), "url", url)
	}
	return body, resp.Request.URL.String(), nil
}

// statusCode maps an HTTP status onto an error code. Server side and rate
// limit failures are retryable, everything else is permanent.
func statusCode(status int) errors.ErrorCode {
	switch {
	case status == http.StatusNotFound || status == http.StatusGone:
		return errors.CodeNotFound
	case status == http.StatusUnauthorized:
		return errors.CodeUnauthorized
	case status == http.StatusForbidden:
		return errors.CodeForbidden
	case status == http.StatusTooManyRequests:
		return errors.CodeRateLimit
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return errors.CodeTimeout
	case status >= 500:
		return errors.CodeUnavailable
	default:
		return errors.CodeInvalidInput
	}
}
