// Package postzaper serves the PostZaper marketing site: landing page, free
// tools directory, legal pages, robots.txt and the prebuilt sitemap.
//
// Every HTML page is rendered into an embedded shell document whose head is
// reconciled by the seo package; the sitemap is produced offline by the
// sitemap package and only served here.
package postzaper

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// App is the marketing site. It wires together the tool store, cache,
// handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *ToolCache

	customRoutes []func(*App)
	seed         []Tool
	shell        []byte
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	a := &App{
		Config: cfg,
		Echo:   e,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the store, seeds it when empty, and registers middleware and
// routes. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("postzaper: SessionSecret is required")
	}

	shell, err := EmbeddedAssets.ReadFile("embedded/shell.html")
	if err != nil {
		return fmt.Errorf("postzaper: read shell: %w", err)
	}
	a.shell = shell

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("postzaper: init store: %w", err)
	}
	a.Store = store

	seed := a.seed
	if seed == nil {
		if seed, err = SeedTools(); err != nil {
			return fmt.Errorf("postzaper: load seed catalog: %w", err)
		}
	}
	seeded, err := a.Store.SeedIfEmpty(seed)
	if err != nil {
		return fmt.Errorf("postzaper: seed store: %w", err)
	}
	if seeded {
		a.Echo.Logger.Infof("seeded tool store with %d tools", len(seed))
	}

	a.Cache = NewToolCache(a.Store, a.Config.ToolCacheTTL)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and runs the HTTP server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if _, err := os.Stat(a.Config.SitemapPath); err != nil {
		a.Echo.Logger.Warnf("no sitemap at %s; run `postzaper sitemap`", a.Config.SitemapPath)
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/og-image.png", a.handleOGImage)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	e.GET("/", a.handleHome)
	e.GET("/tools", a.handleTools)
	e.GET("/tools/:slug", a.handleTool)
	e.GET("/about", a.handleAbout)
	e.GET("/privacy-policy", a.handleLegal("privacy-policy.md", "/privacy-policy", "How "+a.Config.Name+" collects, uses and protects your data."))
	e.GET("/terms", a.handleLegal("terms.md", "/terms", "The terms that govern your use of "+a.Config.Name+"."))
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
