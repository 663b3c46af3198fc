package thredds

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/jmgilman/go/errors"
	"golang.org/x/net/html"
)

// DiscoverCatalogs fetches the HTML page at pageURL and returns the absolute
// URLs of the catalogs it links to, in document order and without
// duplicates. Links to the HTML view of a catalog are returned as links to
// its XML document.
func (c *Client) DiscoverCatalogs(ctx context.Context, pageURL string) ([]string, error) {
	body, finalURL, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(finalURL)
	if err != nil {
		return nil, errors.WithContext(errors.Wrap(err, errors.CodeInvalidInput, "invalid page URL"), "url", finalURL)
	}

	// Parse page as HTML
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithContext(errors.Wrap(err, errors.CodeInvalidInput, "parsing HTML page"), "url", finalURL)
	}

	var (
		catalogs []string
		seen     = map[string]bool{}
	)
	walkNodeTree(doc, func(node *html.Node) {
		if u, ok := matchCatalogLink(node, baseURL); ok && !seen[u] {
			seen[u] = true
			catalogs = append(catalogs, u)
		}
	})
	return catalogs, nil
}

// Is this node an anchor pointing to a catalog? If so, return the absolute
// URL of the catalog's XML document.
func matchCatalogLink(node *html.Node, baseURL *url.URL) (string, bool) {
	if node.Type != html.ElementNode || node.Data != "a" {
		return "", false
	}

	for _, a := range node.Attr {
		if a.Key != "href" {
			continue
		}

		// Parse as a relative URL. Skip invalid references
		relURL, err := url.Parse(a.Val)
		if err != nil {
			continue
		}
		abs := baseURL.ResolveReference(relURL)
		if !strings.HasSuffix(abs.Path, "catalog.xml") && !strings.HasSuffix(abs.Path, "catalog.html") {
			continue
		}
		abs.Path, abs.RawPath, abs.Fragment = CatalogXMLURL(abs.Path), "", ""
		return abs.String(), true
	}
	return "", false
}
