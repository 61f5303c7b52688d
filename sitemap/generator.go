package sitemap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Generator runs one sitemap build: read the catalog, compose the entries,
// and overwrite the output file.
type Generator struct {
	BaseURL string
	Pages   []StaticPage
	Catalog Catalog
	Output  string

	// Out receives progress lines. Nil discards them.
	Out io.Writer
	// Now defaults to time.Now.
	Now func() time.Time
}

// Result summarizes a finished run.
type Result struct {
	Path    string
	Slugs   int
	Entries []Entry
}

// Run builds the sitemap. Nothing is written when the catalog cannot be
// read; the output file is replaced in full otherwise.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	out := g.Out
	if out == nil {
		out = io.Discard
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	pages := g.Pages
	if pages == nil {
		pages = StaticPages
	}

	slugs, err := g.Catalog.Slugs(ctx)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(out, "Found %d tool slugs\n", len(slugs))

	entries := Build(g.BaseURL, pages, slugs, now())

	var buf bytes.Buffer
	if err := Encode(&buf, entries); err != nil {
		return Result{}, fmt.Errorf("encode sitemap: %w", err)
	}
	if err := os.WriteFile(g.Output, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("write sitemap: %w", err)
	}

	fmt.Fprintln(out, "Sitemap generated successfully")
	fmt.Fprintf(out, "  path: %s\n", g.Output)
	fmt.Fprintf(out, "  total URLs: %d\n", len(entries))
	return Result{Path: g.Output, Slugs: len(slugs), Entries: entries}, nil
}
