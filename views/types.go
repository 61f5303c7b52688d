package views

// SiteConfig holds the site-wide values every page needs.
// Handlers pass it to components so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL
	Description string // SITE_DESCRIPTION
}

// Nav is the session-derived state of the primary navigation.
type Nav struct {
	LoggedIn     bool
	PrimaryHref  string // dashboard when signed in, login otherwise
	PrimaryLabel string
	Current      string // path of the page being rendered
}

// Tool is a catalog entry as the views see it.
type Tool struct {
	Slug     string
	Name     string
	Summary  string
	Category string
}

// Stat is one figure in a stat card.
type Stat struct {
	Value string
	Label string
}
