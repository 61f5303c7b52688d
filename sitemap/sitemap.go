// Package sitemap builds the site's sitemap.xml from a fixed list of static
// pages and the slugs found in the tool catalog.
package sitemap

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"time"
)

// Namespace is the sitemap protocol namespace for <urlset>.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// DateFormat is the lastmod layout.
const DateFormat = "2006-01-02"

// ChangeFreq is a sitemap <changefreq> hint.
type ChangeFreq string

const (
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
)

// StaticPage declares one hand-maintained route.
type StaticPage struct {
	Path       string
	ChangeFreq ChangeFreq
	Priority   float64
}

// StaticPages are emitted first, in this order.
var StaticPages = []StaticPage{
	{Path: "/", ChangeFreq: Weekly, Priority: 1.0},
	{Path: "/tools", ChangeFreq: Weekly, Priority: 0.9},
	{Path: "/about", ChangeFreq: Monthly, Priority: 0.7},
	{Path: "/privacy-policy", ChangeFreq: Yearly, Priority: 0.3},
	{Path: "/terms", ChangeFreq: Yearly, Priority: 0.3},
}

// Tool pages share one changefreq and priority.
const (
	ToolChangeFreq = Monthly
	ToolPriority   = 0.8
)

// Entry is one <url> of the sitemap.
type Entry struct {
	Loc        string
	LastMod    string
	ChangeFreq ChangeFreq
	Priority   float64
}

// ToolPath returns the site path of a tool page.
func ToolPath(slug string) string {
	return "/tools/" + slug
}

// Build composes the entries for base: static pages first, then one entry
// per slug in the given order. Duplicate slugs produce duplicate entries.
func Build(base string, pages []StaticPage, slugs []string, date time.Time) []Entry {
	base = strings.TrimRight(base, "/")
	lastMod := date.Format(DateFormat)

	entries := make([]Entry, 0, len(pages)+len(slugs))
	for _, p := range pages {
		entries = append(entries, Entry{
			Loc:        base + p.Path,
			LastMod:    lastMod,
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}
	for _, slug := range slugs {
		entries = append(entries, Entry{
			Loc:        base + ToolPath(slug),
			LastMod:    lastMod,
			ChangeFreq: ToolChangeFreq,
			Priority:   ToolPriority,
		})
	}
	return entries
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Encode writes entries as a sitemap document.
func Encode(w io.Writer, entries []Entry) error {
	set := urlSet{XMLNS: Namespace, URLs: make([]urlXML, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlXML{
			Loc:        e.Loc,
			LastMod:    e.LastMod,
			ChangeFreq: string(e.ChangeFreq),
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
