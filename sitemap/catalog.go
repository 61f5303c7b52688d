package sitemap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
)

// reSlug matches slug: "value" and slug: 'value'. It is a textual scan with
// no notion of comments or string escaping, so a commented-out record still
// yields its slug.
var reSlug = regexp.MustCompile(`slug:\s*["']([^"']+)["']`)

// ExtractSlugs returns every slug value found in text, in order, duplicates
// included.
func ExtractSlugs(text string) []string {
	matches := reSlug.FindAllStringSubmatch(text, -1)
	slugs := make([]string, 0, len(matches))
	for _, m := range matches {
		slugs = append(slugs, m[1])
	}
	return slugs
}

// Catalog yields tool slugs in emission order.
type Catalog interface {
	Slugs(ctx context.Context) ([]string, error)
}

// TextCatalog scans a source file for slug fields.
type TextCatalog struct {
	Path string
}

func (c TextCatalog) Slugs(ctx context.Context) ([]string, error) {
	b, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ExtractSlugs(string(b)), nil
}

// CatalogTool is one record of a structured catalog.
type CatalogTool struct {
	Slug     string `yaml:"slug"`
	Name     string `yaml:"name"`
	Summary  string `yaml:"summary"`
	Category string `yaml:"category"`
}

// ParseYAMLCatalog decodes a list of tool records.
func ParseYAMLCatalog(b []byte) ([]CatalogTool, error) {
	var doc struct {
		Tools []CatalogTool `yaml:"tools"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, t := range doc.Tools {
		if strings.TrimSpace(t.Slug) == "" {
			return nil, fmt.Errorf("parse catalog: tool %d has no slug", i)
		}
	}
	return doc.Tools, nil
}

// YAMLCatalog reads slugs from a structured catalog file.
type YAMLCatalog struct {
	Path string
}

func (c YAMLCatalog) Slugs(ctx context.Context) ([]string, error) {
	b, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	tools, err := ParseYAMLCatalog(b)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, len(tools))
	for i, t := range tools {
		slugs[i] = t.Slug
	}
	return slugs, nil
}

// SlugLister is satisfied by the site's tool store.
type SlugLister interface {
	ListSlugs(ctx context.Context) ([]string, error)
}

// StoreCatalog reads slugs from a SlugLister.
type StoreCatalog struct {
	Store SlugLister
}

func (c StoreCatalog) Slugs(ctx context.Context) ([]string, error) {
	return c.Store.ListSlugs(ctx)
}

// IsYAML reports whether path names a structured catalog.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
