package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// text escapes s for element content and attribute values.
func text(s string) string {
	return templ.EscapeString(s)
}

// render writes static markup interleaved with child components.
func render(ctx context.Context, w io.Writer, parts ...any) error {
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			if _, err := io.WriteString(w, v); err != nil {
				return err
			}
		case templ.Component:
			if v == nil {
				continue
			}
			if err := v.Render(ctx, w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Group renders components one after another.
func Group(cmps ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range cmps {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Raw renders trusted HTML as is.
func Raw(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// PathEscape wraps url.PathEscape for building links.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// TagClass returns CSS classes for a category pill, with active variant.
func TagClass(active bool) string {
	base := "inline-flex items-center rounded-full border border-ink px-3 py-1 text-xs font-semibold uppercase tracking-wide transition"
	if active {
		base += " bg-ink text-white"
	}
	return base
}

func navLinkClass(current, href string) string {
	if current == href || (href != "/" && strings.HasPrefix(current, href+"/")) {
		return "nav-link nav-link-active"
	}
	return "nav-link"
}

func buildURL(base string, p string) string {
	return strings.TrimRight(base, "/") + p
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      buildURL(cfg.URL, "/"),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ToolJsonLD produces a Schema.org SoftwareApplication block for a free tool.
func ToolJsonLD(cfg SiteConfig, t Tool) string {
	data := map[string]interface{}{
		"@context":            "https://schema.org",
		"@type":               "SoftwareApplication",
		"name":                t.Name,
		"description":         t.Summary,
		"url":                 buildURL(cfg.URL, "/tools/"+t.Slug),
		"applicationCategory": "BusinessApplication",
		"operatingSystem":     "Web",
		"offers": map[string]string{
			"@type":         "Offer",
			"price":         "0",
			"priceCurrency": "USD",
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// JsonLD wraps a JSON-LD payload in its script tag. json.Marshal already
// escapes '<' so the payload cannot close the script early.
func JsonLD(payload string) templ.Component {
	return Raw(`<script type="application/ld+json">` + payload + `</script>`)
}
