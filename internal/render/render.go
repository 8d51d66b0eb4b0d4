// Package render turns a finished block sequence into an output document:
// plain markdown, or an HTML page with the documentation converted through
// goldmark and the code blocks passed through verbatim (they were decorated
// when they closed).
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"weave/internal/block"
	"weave/internal/toc"
)

// mdConverter is a pre-configured goldmark instance with GFM table and
// strikethrough support.
var mdConverter = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// Markdown renders the sequence as a markdown document by concatenating the
// block contents in order.
func Markdown(seq *block.Sequence) string {
	var out strings.Builder
	for _, b := range seq.Blocks() {
		out.WriteString(b.Content())
	}
	return out.String()
}

// Page carries the parameters of one rendered HTML page.
type Page struct {
	Title      string
	Stylesheet string
	Nav        []toc.Entry
	Content    template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="{{.Stylesheet}}">
</head>
<body>
{{- if .Nav}}
<nav>
<ul>
{{- range .Nav}}
<li><a href="{{.Path}}">{{.Title}}</a></li>
{{- end}}
</ul>
</nav>
{{- end}}
<main>
{{.Content}}
</main>
</body>
</html>
`))

// HTML renders the sequence as a full HTML page. Documentation blocks are
// converted from markdown; code blocks already carry their wrapper
// elements.
func HTML(seq *block.Sequence, title, stylesheet string, nav []toc.Entry) (string, error) {
	var body strings.Builder
	for _, b := range seq.Blocks() {
		if b.Kind() == block.Code {
			body.WriteString(b.Content())
			continue
		}
		converted, err := markdownToHTML(b.Content())
		if err != nil {
			return "", err
		}
		body.WriteString(converted)
	}

	var out bytes.Buffer
	page := Page{
		Title:      title,
		Stylesheet: stylesheet,
		Nav:        nav,
		Content:    template.HTML(body.String()),
	}
	if err := pageTemplate.Execute(&out, page); err != nil {
		return "", fmt.Errorf("failed to render page %q: %w", title, err)
	}
	return out.String(), nil
}

func markdownToHTML(text string) (string, error) {
	var buf bytes.Buffer
	if err := mdConverter.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}
