package thredds

import "net/http"

// An Option configures a Client or the reading of a catalog.
type Option func(*options)

type options struct {
	httpClient *http.Client
	strategy   FetchStrategy
	skip       SkipFunc
	userAgent  string
	reader     CatalogReader
}

func newOptions(opts []Option) *options {
	o := &options{
		httpClient: http.DefaultClient,
		strategy:   DefaultFetchStrategy,
		userAgent:  "thredds-go",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithHTTPClient sets the HTTP client used to fetch documents.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithFetchStrategy sets the retry and timeout behaviour of fetches.
func WithFetchStrategy(s FetchStrategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithSkip leaves datasets and references whose names match skip out of
// every catalog read.
func WithSkip(skip SkipFunc) Option {
	return func(o *options) { o.skip = skip }
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithReader sets the reader catalog references use to follow links.
// Clients set themselves as the reader of the catalogs they read.
func WithReader(r CatalogReader) Option {
	return func(o *options) { o.reader = r }
}
