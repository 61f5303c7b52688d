package postzaper

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dipakkr/postzaper/markdown"
	"github.com/dipakkr/postzaper/seo"
	"github.com/dipakkr/postzaper/views"
)

const featuredTools = 6

var homeStats = []views.Stat{
	{Value: "10k+", Label: "Posts saved"},
	{Value: "4", Label: "Networks supported"},
	{Value: "3 hrs", Label: "Saved per week"},
}

var networks = []string{"LinkedIn", "X (Twitter)", "Instagram", "Threads"}

func (a *App) handleHome(c echo.Context) error {
	tools, err := a.Cache.ListTools("")
	if err != nil {
		return err
	}
	if len(tools) > featuredTools {
		tools = tools[:featuredTools]
	}
	meta := a.pageMeta("/", a.Config.Name+" - Save and schedule your best posts", a.Config.Description)
	meta.Keywords = "social media bookmarking, post scheduler, linkedin, twitter, instagram"
	return a.Render(c, meta, views.Home(a.viewConfig(), a.NavFor(c), homeStats, networks, toViewTools(tools)))
}

func (a *App) handleTools(c echo.Context) error {
	category := c.QueryParam("category")
	tools, err := a.Cache.ListTools(category)
	if err != nil {
		return err
	}
	categories, err := a.Cache.ListCategories()
	if err != nil {
		return err
	}
	meta := a.pageMeta("/tools", "Free Social Media Tools", "Free formatters, generators and counters for LinkedIn, X and Instagram.")
	// Filtered listings duplicate /tools.
	meta.NoIndex = category != ""
	return a.Render(c, meta, views.ToolsIndex(toViewTools(tools), categories, normalizeCategory(category)))
}

func (a *App) handleTool(c echo.Context) error {
	tool, err := a.Cache.GetTool(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	all, err := a.Cache.ListTools("")
	if err != nil {
		return err
	}
	current := toViewTool(tool)
	related := views.RelatedTools(current, toViewTools(all), 3)

	meta := a.pageMeta(tool.Link(), tool.Name, tool.Summary)
	meta.OGType = "article"
	return a.Render(c, meta, views.ToolDetail(a.viewConfig(), current, related))
}

func (a *App) handleAbout(c echo.Context) error {
	meta := a.pageMeta("/about", "About "+a.Config.Name, "Why we are building "+a.Config.Name+" and who it is for.")
	return a.Render(c, meta, views.About(a.viewConfig(), homeStats))
}

func (a *App) handleLegal(file, path, description string) echo.HandlerFunc {
	return func(c echo.Context) error {
		src, err := EmbeddedAssets.ReadFile("embedded/" + file)
		if err != nil {
			return err
		}
		doc := markdown.ParseDocument(string(src))
		meta := a.pageMeta(path, doc.Title, description)
		return a.Render(c, meta, views.LegalPage(doc.Title, doc.Updated, markdown.Markdown(doc.Body)))
	}
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

func (a *App) handleOGImage(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/og-image.png")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		meta := seo.PageMetadata{Title: "Page not found", Description: "This page does not exist.", NoIndex: true}
		_ = a.RenderStatus(c, http.StatusNotFound, meta, views.NotFound(a.viewConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		meta := seo.PageMetadata{Title: "Something went wrong", Description: "Server error.", NoIndex: true}
		if rerr := a.RenderStatus(c, code, meta, views.ServerError(a.viewConfig())); rerr != nil {
			c.Logger().Errorf("render error page: %v", rerr)
		}
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func toViewTool(t Tool) views.Tool {
	return views.Tool{Slug: t.Slug, Name: t.Name, Summary: t.Summary, Category: t.Category}
}

func toViewTools(tools []Tool) []views.Tool {
	out := make([]views.Tool, len(tools))
	for i, t := range tools {
		out[i] = toViewTool(t)
	}
	return out
}
