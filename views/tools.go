package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ToolGrid lists tools as cards, with optional category filter pills.
func ToolGrid(tools []Tool, categories []string, active string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []any{`<section class="tools py-12">`}
		if len(categories) > 0 {
			parts = append(parts, `<div class="mb-6 flex flex-wrap gap-2">`,
				`<a href="/tools" class="`, TagClass(active == ""), `">All</a>`)
			for _, c := range categories {
				parts = append(parts,
					`<a href="/tools?category=`, text(PathEscape(c)), `" class="`, TagClass(active == c), `">`, text(c), `</a>`)
			}
			parts = append(parts, `</div>`)
		}
		if len(tools) == 0 {
			parts = append(parts, `<p class="empty">No tools yet.</p></section>`)
			return render(ctx, w, parts...)
		}
		parts = append(parts, `<ul class="grid gap-6 md:grid-cols-3">`)
		for _, t := range tools {
			parts = append(parts, toolCard(t))
		}
		parts = append(parts, `</ul></section>`)
		return render(ctx, w, parts...)
	})
}

func toolCard(t Tool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(ctx, w,
			`<li class="tool-card card"><a href="/tools/`, text(PathEscape(t.Slug)), `">`,
			`<h3 class="font-semibold">`, text(t.Name), `</h3>`,
			`<p>`, text(t.Summary), `</p>`,
			`</a></li>`,
		)
	})
}

// ToolsIndex is the /tools page.
func ToolsIndex(tools []Tool, categories []string, active string) templ.Component {
	return Group(
		Raw(`<section class="py-12"><h1 class="text-4xl font-bold">Free social media tools</h1></section>`),
		ToolGrid(tools, categories, active),
	)
}

// ToolDetail is a single tool page. The interactive widget mounts into
// #tool-app client side; until then a skeleton is shown.
func ToolDetail(cfg SiteConfig, t Tool, related []Tool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []any{
			`<article class="tool py-12">`,
			`<nav class="text-sm"><a href="/tools">Free Tools</a> / `, text(t.Name), `</nav>`,
			`<h1 class="text-4xl font-bold">`, text(t.Name), `</h1>`,
			`<p class="mt-4 text-lg">`, text(t.Summary), `</p>`,
			`<div id="tool-app" data-tool="`, text(t.Slug), `">`, Skeleton(4), `</div>`,
			`</article>`,
		}
		if len(related) > 0 {
			parts = append(parts, `<h2 class="text-2xl font-bold">Related tools</h2>`, ToolGrid(related, nil, ""))
		}
		parts = append(parts, JsonLD(ToolJsonLD(cfg, t)))
		return render(ctx, w, parts...)
	})
}

// RelatedTools returns up to limit tools from the same category as current.
func RelatedTools(current Tool, tools []Tool, limit int) []Tool {
	var related []Tool
	for _, t := range tools {
		if len(related) == limit {
			break
		}
		if t.Slug == current.Slug || t.Category == "" || t.Category != current.Category {
			continue
		}
		related = append(related, t)
	}
	return related
}
