package seo

import "sync"

// twitterCard is the card type announced for every page.
const twitterCard = "summary_large_image"

// Apply reconciles head with m. It is an idempotent upsert: applying the
// same metadata twice leaves the head as applying it once, and elements
// Apply does not own are never touched.
func Apply(head Head, siteName string, m PageMetadata) {
	m = m.withDefaults()
	title := m.FullTitle(siteName)

	head.SetTitle(title)

	head.UpsertTag(Meta("description"), m.Description)
	if m.Keywords != "" {
		head.UpsertTag(Meta("keywords"), m.Keywords)
	}
	head.UpsertTag(Meta("robots"), m.Robots())

	head.UpsertTag(Property("og:title"), title)
	head.UpsertTag(Property("og:description"), m.Description)
	head.UpsertTag(Property("og:type"), m.OGType)
	head.UpsertTag(Property("og:site_name"), siteName)
	head.UpsertTag(Property("og:image"), m.OGImage)

	head.UpsertTag(Meta("twitter:card"), twitterCard)
	head.UpsertTag(Meta("twitter:title"), title)
	head.UpsertTag(Meta("twitter:description"), m.Description)
	head.UpsertTag(Meta("twitter:image"), m.OGImage)

	if m.CanonicalURL != "" {
		head.UpsertTag(Canonical, m.CanonicalURL)
	}
}

// Synchronizer binds page lifecycles to a single Head. At most one page is
// active at a time; entering a new page releases the previous one first.
type Synchronizer struct {
	mu       sync.Mutex
	head     Head
	siteName string
	active   *Page
}

// NewSynchronizer returns a Synchronizer for head under siteName.
func NewSynchronizer(head Head, siteName string) *Synchronizer {
	return &Synchronizer{head: head, siteName: siteName}
}

// Page is the handle returned by Enter. Leave releases it.
type Page struct {
	s    *Synchronizer
	meta PageMetadata
	left bool
}

// Enter activates m on the head.
func (s *Synchronizer) Enter(m PageMetadata) *Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		s.active.release()
	}
	p := &Page{s: s, meta: m}
	Apply(s.head, s.siteName, m)
	s.active = p
	return p
}

// Update applies changed metadata for a page that is still active. The title
// is reset before the new metadata lands, same as a Leave/Enter pair.
// Update on a page that has left does nothing.
func (p *Page) Update(m PageMetadata) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if p.left {
		return
	}
	p.meta = m
	p.s.head.SetTitle(p.s.siteName)
	Apply(p.s.head, p.s.siteName, m)
}

// Metadata returns the metadata last applied for p.
func (p *Page) Metadata() PageMetadata {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	return p.meta
}

// Leave resets the title to the bare site name. Meta tag values stay until
// the next page overwrites them. Calling Leave more than once is a no-op.
func (p *Page) Leave() {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.release()
}

func (p *Page) release() {
	if p.left {
		return
	}
	p.left = true
	p.s.head.SetTitle(p.s.siteName)
	if p.s.active == p {
		p.s.active = nil
	}
}
