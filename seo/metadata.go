// Package seo keeps a document head in sync with the metadata of the page
// currently being shown.
//
// The head itself is reached through the Head interface, so the same
// reconciliation runs against a parsed HTML document on the server and an
// in-memory MemoryHead in tests.
package seo

import "strings"

// Defaults applied to optional PageMetadata fields.
const (
	DefaultOGImage = "/og-image.png"
	DefaultOGType  = "website"
)

// PageMetadata describes the head tags one page wants.
type PageMetadata struct {
	Title        string
	Description  string
	Keywords     string // optional, no tag when empty
	OGImage      string // default "/og-image.png"
	OGType       string // "website" or "article", default "website"
	CanonicalURL string // optional, no link when empty
	NoIndex      bool
}

// FullTitle returns the document title for m under siteName.
func (m PageMetadata) FullTitle(siteName string) string {
	if siteName == "" || strings.Contains(m.Title, siteName) {
		return m.Title
	}
	return m.Title + " | " + siteName
}

// Robots returns the robots directive for m.
func (m PageMetadata) Robots() string {
	if m.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow"
}

func (m PageMetadata) withDefaults() PageMetadata {
	if m.OGImage == "" {
		m.OGImage = DefaultOGImage
	}
	if m.OGType == "" {
		m.OGType = DefaultOGType
	}
	return m
}
