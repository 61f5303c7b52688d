package postzaper

import (
	"bytes"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/dipakkr/postzaper/seo"
	"github.com/dipakkr/postzaper/views"
)

// Render writes content inside the site layout as an HTTP 200 HTML page,
// with the head reconciled to meta.
func (a *App) Render(c echo.Context, meta seo.PageMetadata, content templ.Component) error {
	return a.RenderStatus(c, http.StatusOK, meta, content)
}

// RenderStatus is Render with a specific HTTP status code. Every page starts
// from the embedded shell document; its head is brought in line with meta
// and the layout is appended to its body.
func (a *App) RenderStatus(c echo.Context, code int, meta seo.PageMetadata, content templ.Component) error {
	doc, err := seo.ParseDocument(bytes.NewReader(a.shell))
	if err != nil {
		return err
	}
	if meta.OGImage == "" {
		meta.OGImage = AbsoluteURL(a.Config.URL, seo.DefaultOGImage)
	}
	seo.Apply(doc, a.Config.Name, meta)

	var body bytes.Buffer
	page := views.Page(a.viewConfig(), a.NavFor(c), time.Now().Year(), content)
	if err := page.Render(c.Request().Context(), &body); err != nil {
		return err
	}
	if err := doc.AppendBody(&body); err != nil {
		return err
	}

	var out bytes.Buffer
	if err := doc.Render(&out); err != nil {
		return err
	}
	return c.HTMLBlob(code, out.Bytes())
}

func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
	}
}

// pageMeta fills the canonical URL for path.
func (a *App) pageMeta(path, title, description string) seo.PageMetadata {
	return seo.PageMetadata{
		Title:        title,
		Description:  description,
		CanonicalURL: AbsoluteURL(a.Config.URL, path),
	}
}
