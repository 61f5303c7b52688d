package postzaper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dipakkr/postzaper/sitemap"
)

// SeedTools returns the tool catalog embedded in the binary.
func SeedTools() ([]Tool, error) {
	b, err := EmbeddedAssets.ReadFile("embedded/tools.yaml")
	if err != nil {
		return nil, err
	}
	return toolsFromYAML(b)
}

// LoadToolsFile reads a structured YAML catalog from disk.
func LoadToolsFile(path string) ([]Tool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return toolsFromYAML(b)
}

func toolsFromYAML(b []byte) ([]Tool, error) {
	records, err := sitemap.ParseYAMLCatalog(b)
	if err != nil {
		return nil, err
	}
	tools := make([]Tool, len(records))
	for i, r := range records {
		tools[i] = Tool{
			Slug:     r.Slug,
			Name:     r.Name,
			Summary:  r.Summary,
			Category: r.Category,
			Position: i,
		}
	}
	return tools, nil
}

// OpenCatalog picks the slug source for path by extension: a YAML file is
// read as structured records, a .db file is opened as a tool Store, and
// anything else is scanned as text. The returned close func is never nil.
func OpenCatalog(path string) (sitemap.Catalog, func() error, error) {
	noop := func() error { return nil }
	switch {
	case sitemap.IsYAML(path):
		return sitemap.YAMLCatalog{Path: path}, noop, nil
	case strings.EqualFold(filepath.Ext(path), ".db"):
		if _, err := os.Stat(path); err != nil {
			return nil, noop, fmt.Errorf("read catalog: %w", err)
		}
		store, err := NewStore(path)
		if err != nil {
			return nil, noop, fmt.Errorf("open catalog store: %w", err)
		}
		return sitemap.StoreCatalog{Store: store}, store.Close, nil
	default:
		return sitemap.TextCatalog{Path: path}, noop, nil
	}
}
