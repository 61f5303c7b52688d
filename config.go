package postzaper

import (
	"strconv"
	"strings"
	"time"
)

// SiteConfig holds all configuration for the marketing site and its build
// tools.
type SiteConfig struct {
	Name        string // Site name (default "PostZaper")
	URL         string // Canonical base URL, no trailing slash (default "https://postzaper.com")
	Description string // Default meta description

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite tool store (default "data/tools.db")
	StaticDir    string // Static assets served under /public (default "public")

	SitemapPath string // Generated sitemap (default "public/sitemap.xml")
	CatalogPath string // Tool catalog scanned for slugs (default "data/tools.ts")

	DashboardURL string // Primary nav target for signed-in visitors (default "/dashboard")
	LoginURL     string // Primary nav target otherwise (default "/login")

	SessionSecret string // Key of the session cookie issued by the app
	CookieSecure  bool

	ToolCacheTTL time.Duration // Tool cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "PostZaper"
	}
	if c.URL == "" {
		c.URL = "https://postzaper.com"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Description == "" {
		c.Description = "Save, organize and schedule your best social media posts."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/tools.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.SitemapPath == "" {
		c.SitemapPath = c.StaticDir + "/sitemap.xml"
	}
	if c.CatalogPath == "" {
		c.CatalogPath = "data/tools.ts"
	}
	if c.DashboardURL == "" {
		c.DashboardURL = "/dashboard"
	}
	if c.LoginURL == "" {
		c.LoginURL = "/login"
	}
	if c.ToolCacheTTL == 0 {
		c.ToolCacheTTL = 5 * time.Minute
	}
}

// ConfigFromEnv reads SiteConfig from the environment and applies defaults.
func ConfigFromEnv() SiteConfig {
	secure, _ := strconv.ParseBool(EnvOr("COOKIE_SECURE", "false"))
	cfg := SiteConfig{
		Name:          EnvOr("SITE_NAME", ""),
		URL:           EnvOr("SITE_URL", ""),
		Description:   EnvOr("SITE_DESCRIPTION", ""),
		Addr:          EnvOr("ADDR", ""),
		DatabasePath:  EnvOr("DATABASE_PATH", ""),
		StaticDir:     EnvOr("STATIC_DIR", ""),
		SitemapPath:   EnvOr("SITEMAP_PATH", ""),
		CatalogPath:   EnvOr("TOOL_CATALOG", ""),
		DashboardURL:  EnvOr("DASHBOARD_URL", ""),
		LoginURL:      EnvOr("LOGIN_URL", ""),
		SessionSecret: EnvOr("SESSION_SECRET", ""),
		CookieSecure:  secure,
	}
	cfg.setDefaults()
	return cfg
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithSeed replaces the embedded seed catalog used when the store is empty.
func WithSeed(tools []Tool) Option {
	return func(a *App) {
		a.seed = tools
	}
}
