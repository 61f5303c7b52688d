package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Page is the body of every HTML page: navbar, main content, footer.
// The <head> is owned by the seo package, not by this component.
func Page(cfg SiteConfig, nav Nav, year int, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(ctx, w,
			Navbar(cfg, nav),
			`<main id="content" class="min-h-screen">`,
			content,
			`</main>`,
			Footer(cfg, year),
		)
	})
}

var navLinks = []struct{ href, label string }{
	{"/tools", "Free Tools"},
	{"/about", "About"},
}

// Navbar renders the top navigation. The call to action points at the
// dashboard for signed-in visitors and at the login page otherwise.
func Navbar(cfg SiteConfig, nav Nav) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []any{
			`<header class="navbar"><nav class="mx-auto flex max-w-6xl items-center justify-between px-4 py-3">`,
			`<a href="/" class="brand font-bold">`, text(cfg.Name), `</a>`,
			`<ul class="flex gap-6">`,
		}
		for _, l := range navLinks {
			parts = append(parts,
				`<li><a href="`, l.href, `" class="`, navLinkClass(nav.Current, l.href), `">`, text(l.label), `</a></li>`)
		}
		parts = append(parts, `</ul>`)
		cta := "btn btn-primary"
		if nav.LoggedIn {
			cta += " btn-dashboard"
		}
		parts = append(parts,
			`<a href="`, text(nav.PrimaryHref), `" class="`, cta, `">`, text(nav.PrimaryLabel), `</a>`,
			`</nav></header>`)
		return render(ctx, w, parts...)
	})
}

var footerLinks = []struct{ href, label string }{
	{"/tools", "Free Tools"},
	{"/about", "About"},
	{"/privacy-policy", "Privacy Policy"},
	{"/terms", "Terms of Service"},
	{"/sitemap.xml", "Sitemap"},
}

// Footer renders the site footer with legal links.
func Footer(cfg SiteConfig, year int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []any{`<footer class="footer border-t"><div class="mx-auto max-w-6xl px-4 py-8">`,
			`<ul class="flex flex-wrap gap-4 text-sm">`}
		for _, l := range footerLinks {
			parts = append(parts, `<li><a href="`, l.href, `">`, text(l.label), `</a></li>`)
		}
		parts = append(parts, `</ul>`,
			`<p class="mt-4 text-xs">&copy; `, strconv.Itoa(year), ` `, text(cfg.Name), `. All rights reserved.</p>`,
			`</div></footer>`)
		return render(ctx, w, parts...)
	})
}
