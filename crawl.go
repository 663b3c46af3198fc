package thredds

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Crawl reads the catalog at url and calls fn for every data file found in
// it. References are followed up to depth levels below the first catalog,
// several at a time, but no catalog is read twice. fn is never called
// concurrently. Crawling stops at the first error returned by fn or met
// while reading a catalog.
func (c *Client) Crawl(ctx context.Context, url string, depth int, fn func(*DirectDataset) error) error {
	g, ctx := errgroup.WithContext(ctx)
	cr := &crawler{
		client: c,
		fn:     fn,
		group:  g,
		sem:    make(chan struct{}, MaximumSimultaneousFetches),
		seen:   map[string]bool{},
	}
	cr.visit(ctx, CatalogXMLURL(url), depth, nil)
	return g.Wait()
}

type crawler struct {
	client *Client
	fn     func(*DirectDataset) error
	group  *errgroup.Group

	// Semaphore limiting the number of simultaneous fetches
	sem chan struct{}

	seenMu sync.Mutex
	seen   map[string]bool

	fnMu sync.Mutex
}

// visit schedules reading the catalog at url, either directly or by
// following ref when one is given.
func (cr *crawler) visit(ctx context.Context, url string, depth int, ref *CatalogRef) {
	cr.seenMu.Lock()
	if cr.seen[url] {
		cr.seenMu.Unlock()
		return
	}
	cr.seen[url] = true
	cr.seenMu.Unlock()

	cr.group.Go(func() error {
		cat, err := cr.read(ctx, url, ref)
		if err != nil {
			return err
		}

		if err := cr.emit(cat.FlatDatasets()); err != nil {
			return err
		}

		if depth <= 0 {
			return nil
		}
		for _, child := range cat.FlatReferences() {
			cr.visit(ctx, CatalogXMLURL(child.URL), depth-1, child)
		}
		return nil
	})
}

func (cr *crawler) read(ctx context.Context, url string, ref *CatalogRef) (*Catalog, error) {
	select {
	case cr.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-cr.sem }()

	if ref != nil {
		return ref.Follow(ctx)
	}
	return cr.client.ReadURL(ctx, url)
}

func (cr *crawler) emit(datasets []*DirectDataset) error {
	cr.fnMu.Lock()
	defer cr.fnMu.Unlock()
	for _, ds := range datasets {
		if err := cr.fn(ds); err != nil {
			return err
		}
	}
	return nil
}
