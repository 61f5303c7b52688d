package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Hero is the landing section of the home page.
func Hero(cfg SiteConfig, nav Nav) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(ctx, w,
			`<section class="hero py-20 text-center">`,
			`<h1 class="text-5xl font-extrabold">Never lose a great post again</h1>`,
			`<p class="mt-4 text-lg">`, text(cfg.Description), `</p>`,
			`<div class="mt-8 flex justify-center gap-4">`,
			`<a href="`, text(nav.PrimaryHref), `" class="btn btn-primary">`, text(nav.PrimaryLabel), `</a>`,
			`<a href="/tools" class="btn btn-secondary">Try the free tools</a>`,
			`</div></section>`,
		)
	})
}

var problems = []struct{ title, body string }{
	{"Bookmarks get buried", "Saved posts disappear into endless platform folders you never open again."},
	{"Ideas slip away", "Inspiration strikes while scrolling, but there is nowhere to capture it."},
	{"Scheduling is scattered", "Every network has its own scheduler, so consistency takes a spreadsheet."},
}

// Problem lists the pains the product addresses.
func Problem() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []any{`<section class="problem py-16"><h2 class="text-3xl font-bold">The problem</h2><div class="grid gap-6 md:grid-cols-3">`}
		for _, p := range problems {
			parts = append(parts, `<article class="card"><h3 class="font-semibold">`, text(p.title), `</h3><p>`, text(p.body), `</p></article>`)
		}
		parts = append(parts, `</div></section>`)
		return render(ctx, w, parts...)
	})
}

// TrustBar shows the networks the product works with.
func TrustBar(names []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(names) == 0 {
			return nil
		}
		parts := []any{`<section class="trust-bar py-8"><p class="text-sm uppercase tracking-wide">Works with</p><ul class="flex flex-wrap justify-center gap-8">`}
		for _, n := range names {
			parts = append(parts, `<li class="trust-item">`, text(n), `</li>`)
		}
		parts = append(parts, `</ul></section>`)
		return render(ctx, w, parts...)
	})
}

// StatCard renders one figure.
func StatCard(s Stat) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(ctx, w,
			`<div class="stat-card rounded-lg border p-6 text-center">`,
			`<p class="stat-value text-4xl font-bold">`, text(s.Value), `</p>`,
			`<p class="stat-label text-sm">`, text(s.Label), `</p>`,
			`</div>`,
		)
	})
}

// StatGrid lays out stat cards.
func StatGrid(stats []Stat) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []any{`<section class="stats grid gap-6 py-12 md:grid-cols-3">`}
		for _, s := range stats {
			parts = append(parts, StatCard(s))
		}
		parts = append(parts, `</section>`)
		return render(ctx, w, parts...)
	})
}

// Skeleton renders a loading placeholder with n lines.
func Skeleton(n int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lines := max(n, 1)
		var b strings.Builder
		b.WriteString(`<div class="skeleton animate-pulse" aria-busy="true" aria-live="polite">`)
		for i := 0; i < lines; i++ {
			b.WriteString(`<div class="skeleton-line h-4 rounded bg-stone-200"></div>`)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Home composes the landing page.
func Home(cfg SiteConfig, nav Nav, stats []Stat, networks []string, featured []Tool) templ.Component {
	return Group(
		Hero(cfg, nav),
		TrustBar(networks),
		Problem(),
		StatGrid(stats),
		ToolGrid(featured, nil, ""),
		JsonLD(WebsiteJsonLD(cfg)),
	)
}
