package seo

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page whose <head> implements Head.
type Document struct {
	root *html.Node
	head *html.Node
	body *html.Node
}

// ParseDocument parses a full HTML page.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	d := &Document{
		root: root,
		head: findElement(root, atom.Head),
		body: findElement(root, atom.Body),
	}
	if d.head == nil || d.body == nil {
		return nil, errors.New("seo: document has no head or body")
	}
	return d, nil
}

func (d *Document) Title() string {
	t := d.titleNode()
	if t == nil {
		return ""
	}
	var b strings.Builder
	for c := t.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func (d *Document) SetTitle(title string) {
	t := d.titleNode()
	if t == nil {
		t = &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
		d.head.AppendChild(t)
	}
	for t.FirstChild != nil {
		t.RemoveChild(t.FirstChild)
	}
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
}

func (d *Document) GetTag(t Tag) (string, bool) {
	n := d.findTag(t)
	if n == nil {
		return "", false
	}
	v, _ := attr(n, t.ValueAttr)
	return v, true
}

func (d *Document) UpsertTag(t Tag, value string) {
	n := d.findTag(t)
	if n == nil {
		n = &html.Node{
			Type:     html.ElementNode,
			Data:     t.Element,
			DataAtom: atom.Lookup([]byte(t.Element)),
			Attr:     []html.Attribute{{Key: t.KeyAttr, Val: t.Key}},
		}
		d.head.AppendChild(n)
	}
	setAttr(n, t.ValueAttr, value)
}

func (d *Document) RemoveTag(t Tag) {
	if n := d.findTag(t); n != nil {
		d.head.RemoveChild(n)
	}
}

// AppendBody parses r as an HTML fragment in body context and appends it
// to the document body.
func (d *Document) AppendBody(r io.Reader) error {
	nodes, err := html.ParseFragment(r, d.body)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		d.body.AppendChild(n)
	}
	return nil
}

// Render writes the whole document, doctype included.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) titleNode() *html.Node {
	for c := d.head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Title {
			return c
		}
	}
	return nil
}

func (d *Document) findTag(t Tag) *html.Node {
	for c := d.head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != t.Element {
			continue
		}
		if v, ok := attr(c, t.KeyAttr); ok && v == t.Key {
			return c
		}
	}
	return nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
