package postzaper

import (
	"net/url"
	"strings"
)

// AbsoluteURL joins the site base URL and a site path. Paths that are
// already absolute URLs are returned unchanged.
func AbsoluteURL(base, p string) string {
	if u, err := url.Parse(p); err == nil && u.IsAbs() {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(base, "/") + p
}
