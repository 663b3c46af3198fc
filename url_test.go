package thredds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{
			name: "relative path",
			base: "http://example.org/thredds/catalog.xml",
			ref:  "sub/catalog.xml",
			want: "http://example.org/thredds/sub/catalog.xml",
		},
		{
			name: "absolute path",
			base: "http://example.org/thredds/catalog/x/catalog.xml",
			ref:  "/thredds/fileServer/",
			want: "http://example.org/thredds/fileServer/",
		},
		{
			name: "absolute URL",
			base: "http://example.org/thredds/catalog.xml",
			ref:  "https://other.org/data/",
			want: "https://other.org/data/",
		},
		{
			name: "parent segments",
			base: "http://example.org/a/b/c.xml",
			ref:  "../d.xml",
			want: "http://example.org/a/d.xml",
		},
		{
			name: "empty reference",
			base: "http://example.org/thredds/catalog.xml",
			ref:  "",
			want: "http://example.org/thredds/catalog.xml",
		},
		{
			name: "query kept",
			base: "http://example.org/thredds/",
			ref:  "catalog.xml?dataset=x",
			want: "http://example.org/thredds/catalog.xml?dataset=x",
		},
		{
			name: "unparseable base",
			base: "http://[::1",
			ref:  "data.nc",
			want: "data.nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(tt.base, tt.ref))
		})
	}
}
