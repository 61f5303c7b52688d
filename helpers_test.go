package postzaper

import "testing"

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://postzaper.com", "/", "https://postzaper.com/"},
		{"https://postzaper.com/", "/tools", "https://postzaper.com/tools"},
		{"https://postzaper.com", "og-image.png", "https://postzaper.com/og-image.png"},
		{"https://postzaper.com", "https://cdn.example.com/x.png", "https://cdn.example.com/x.png"},
	}
	for _, tt := range tests {
		if got := AbsoluteURL(tt.base, tt.path); got != tt.want {
			t.Errorf("AbsoluteURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := SiteConfig{URL: "https://example.com/", StaticDir: "web"}
	cfg.setDefaults()

	if cfg.Name != "PostZaper" {
		t.Errorf("Name = %q, want PostZaper", cfg.Name)
	}
	if cfg.URL != "https://example.com" {
		t.Errorf("URL = %q, want trailing slash trimmed", cfg.URL)
	}
	if cfg.SitemapPath != "web/sitemap.xml" {
		t.Errorf("SitemapPath = %q, want web/sitemap.xml", cfg.SitemapPath)
	}
	if cfg.CatalogPath != "data/tools.ts" {
		t.Errorf("CatalogPath = %q, want data/tools.ts", cfg.CatalogPath)
	}
	if cfg.ToolCacheTTL == 0 {
		t.Error("ToolCacheTTL should default to non-zero")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_NAME", "Zapper")
	t.Setenv("SITE_URL", "http://localhost:3000")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("TOOL_CATALOG", "data/tools.yaml")

	cfg := ConfigFromEnv()
	if cfg.Name != "Zapper" || cfg.URL != "http://localhost:3000" {
		t.Errorf("got Name=%q URL=%q", cfg.Name, cfg.URL)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure should be true")
	}
	if cfg.CatalogPath != "data/tools.yaml" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
}
