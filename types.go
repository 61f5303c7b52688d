package postzaper

// Tool is one free tool listed on the marketing site under /tools/{slug}.
type Tool struct {
	Slug     string
	Name     string
	Summary  string
	Category string
	Position int
}

// Link returns the site path of the tool page.
func (t Tool) Link() string {
	return "/tools/" + t.Slug
}
