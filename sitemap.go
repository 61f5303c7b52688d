package postzaper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/dipakkr/postzaper/sitemap"
)

// GenerateSitemap builds the sitemap file for cfg from its tool catalog.
// Progress lines go to out.
func GenerateSitemap(ctx context.Context, cfg SiteConfig, out io.Writer) (sitemap.Result, error) {
	cfg.setDefaults()
	catalog, closeCatalog, err := OpenCatalog(cfg.CatalogPath)
	if err != nil {
		return sitemap.Result{}, err
	}
	defer closeCatalog()

	g := &sitemap.Generator{
		BaseURL: cfg.URL,
		Pages:   sitemap.StaticPages,
		Catalog: catalog,
		Output:  cfg.SitemapPath,
		Out:     out,
	}
	return g.Run(ctx)
}

// handleSitemap serves the generated file. The sitemap is a build artifact;
// until `postzaper sitemap` has run there is nothing to serve.
func (a *App) handleSitemap(c echo.Context) error {
	f, err := os.Open(a.Config.SitemapPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound, "sitemap not generated")
		}
		return err
	}
	defer f.Close()
	return c.Stream(http.StatusOK, "application/xml; charset=utf-8", f)
}

// handleRobots generates robots.txt from SITE_URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}
