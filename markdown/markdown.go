// Package markdown renders the site's Markdown documents (privacy policy,
// terms) to HTML with goldmark and exposes them as templ components.
package markdown

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// md is shared by every call. Raw HTML in the source is dropped, since the
// documents only need headings, lists, links and tables.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Markdown returns a templ.Component that renders content as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Document is a Markdown file with an optional title line and
// "Last updated:" line split off the body.
type Document struct {
	Title   string
	Updated string
	Body    string
}

// ParseDocument splits a leading "# Title" heading and a "Last updated:
// ..." line from the rest of src. Both are optional.
func ParseDocument(src string) Document {
	var doc Document
	rest := src
	for rest != "" {
		line, tail, _ := strings.Cut(rest, "\n")
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case doc.Title == "" && doc.Updated == "" && strings.HasPrefix(trimmed, "# "):
			doc.Title = strings.TrimSpace(trimmed[2:])
		case doc.Updated == "" && len(trimmed) >= len(updatedPrefix) && strings.EqualFold(trimmed[:len(updatedPrefix)], updatedPrefix):
			doc.Updated = strings.TrimSpace(trimmed[len(updatedPrefix):])
		default:
			doc.Body = rest
			return doc
		}
		rest = tail
	}
	return doc
}

const updatedPrefix = "last updated:"
