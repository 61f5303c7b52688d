package seo

// Tag identifies one head element by its element name and identifying
// attribute, e.g. meta[name=description] or link[rel=canonical].
// ValueAttr names the attribute that carries the element's value.
type Tag struct {
	Element   string
	KeyAttr   string
	Key       string
	ValueAttr string
}

// Meta returns the tag for <meta name="name" content="...">.
func Meta(name string) Tag {
	return Tag{Element: "meta", KeyAttr: "name", Key: name, ValueAttr: "content"}
}

// Property returns the tag for <meta property="prop" content="...">.
func Property(prop string) Tag {
	return Tag{Element: "meta", KeyAttr: "property", Key: prop, ValueAttr: "content"}
}

// Link returns the tag for <link rel="rel" href="...">.
func Link(rel string) Tag {
	return Tag{Element: "link", KeyAttr: "rel", Key: rel, ValueAttr: "href"}
}

// Canonical is the canonical URL link.
var Canonical = Link("canonical")

// Head is the port through which metadata reaches a document head.
// Implementations upsert in place: UpsertTag on an existing element only
// overwrites its value, and a missing element is appended.
type Head interface {
	Title() string
	SetTitle(title string)
	GetTag(t Tag) (string, bool)
	UpsertTag(t Tag, value string)
	RemoveTag(t Tag)
}
