package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LegalPage frames a legal document (privacy policy, terms).
func LegalPage(title, updated string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []any{
			`<article class="legal prose mx-auto max-w-3xl py-12">`,
			`<h1>`, text(title), `</h1>`,
		}
		if updated != "" {
			parts = append(parts, `<p class="text-sm">Last updated: `, text(updated), `</p>`)
		}
		parts = append(parts, body, `</article>`)
		return render(ctx, w, parts...)
	})
}

// About is the company page.
func About(cfg SiteConfig, stats []Stat) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(ctx, w,
			`<section class="about mx-auto max-w-3xl py-12">`,
			`<h1 class="text-4xl font-bold">About `, text(cfg.Name), `</h1>`,
			`<p class="mt-4">`, text(cfg.Name), ` helps creators and social media managers save the posts that inspire them and turn them into a consistent publishing schedule.</p>`,
			`</section>`,
			StatGrid(stats),
		)
	})
}

// NotFound is the 404 page body.
func NotFound(cfg SiteConfig) templ.Component {
	return Raw(`<section class="error py-24 text-center"><h1 class="text-5xl font-bold">404</h1>` +
		`<p class="mt-4">This page does not exist.</p>` +
		`<a href="/" class="btn btn-primary mt-8">Back to ` + text(cfg.Name) + `</a></section>`)
}

// ServerError is the 500 page body.
func ServerError(cfg SiteConfig) templ.Component {
	return Raw(`<section class="error py-24 text-center"><h1 class="text-5xl font-bold">Something went wrong</h1>` +
		`<p class="mt-4">Please try again in a moment.</p>` +
		`<a href="/" class="btn btn-primary mt-8">Back to ` + text(cfg.Name) + `</a></section>`)
}
