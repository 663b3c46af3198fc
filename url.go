package thredds

import "net/url"

// ResolveURL resolves ref against base following the usual rules for
// relative references. The result is not validated. If either side cannot
// be parsed, ref is returned when it is non-empty and base otherwise.
func ResolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return fallbackURL(base, ref)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return fallbackURL(base, ref)
	}
	return baseURL.ResolveReference(refURL).String()
}

func fallbackURL(base, ref string) string {
	if ref != "" {
		return ref
	}
	return base
}
