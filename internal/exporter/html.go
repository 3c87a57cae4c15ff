package exporter

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"resumeforge/internal/render"
)

// pageTemplate is the printable page shell; the projected document tree
// is rendered into Body.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #1f2937; max-width: 820px; margin: 2rem auto; padding: 0 1.5rem; line-height: 1.5; }
  h1 { font-size: 1.9rem; margin: 0 0 .25rem; }
  h2 { font-size: 1.05rem; text-transform: uppercase; letter-spacing: .08em; border-bottom: 1px solid #d1d5db; padding-bottom: .25rem; margin: 1.4rem 0 .6rem; }
  h3 { font-size: 1rem; margin: .8rem 0 .1rem; }
  p { margin: .25rem 0; }
  ul { margin: .3rem 0 .6rem 1.2rem; padding: 0; }
  li { margin: .15rem 0; }
  .row { display: flex; gap: 2rem; }
  .column { flex: 1; }
  .badge { display: inline-block; background: #eef2f7; border-radius: 4px; padding: .1rem .5rem; margin: 0 .3rem .3rem 0; font-size: .85rem; }
  .daterange { color: #6b7280; font-size: .85rem; }
  .contact { color: #4b5563; font-size: .9rem; margin-right: .8rem; }
  .accent { color: #2563eb; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

// writeHTML serializes a document tree into a standalone printable page.
func writeHTML(tree *render.Node) ([]byte, error) {
	var body strings.Builder
	for _, child := range tree.Children {
		htmlNode(&body, child)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	title := "Resume"
	if h := tree.Find(func(n *render.Node) bool { return n.Role == render.RoleHeading }); h != nil && h.Text != "" {
		title = h.Text
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

func htmlNode(w *strings.Builder, n *render.Node) {
	text := html.EscapeString(n.Text)
	if n.Link != "" {
		text = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(n.Link), text)
	}

	switch n.Role {
	case render.RoleRow:
		w.WriteString(`<div class="row">`)
		htmlChildren(w, n)
		w.WriteString("</div>\n")
	case render.RoleColumn:
		w.WriteString(`<div class="column">`)
		htmlChildren(w, n)
		w.WriteString("</div>\n")
	case render.RoleSection:
		w.WriteString("<section>")
		if n.Text != "" {
			w.WriteString("<h2>" + text + "</h2>")
		}
		htmlChildren(w, n)
		w.WriteString("</section>\n")
	case render.RoleHeading:
		w.WriteString("<h1>" + text + "</h1>\n")
	case render.RoleSubheading:
		w.WriteString(htmlTagged("h3", n, text))
	case render.RoleParagraph:
		w.WriteString(htmlTagged("p", n, text))
	case render.RoleList:
		w.WriteString("<ul>")
		htmlChildren(w, n)
		w.WriteString("</ul>\n")
	case render.RoleItem:
		w.WriteString("<li>" + text + "</li>")
	case render.RoleBadge:
		w.WriteString(`<span class="badge">` + text + "</span>")
	case render.RoleEntry:
		w.WriteString("<div>")
		if n.Text != "" {
			w.WriteString("<p>" + text + "</p>")
		}
		htmlChildren(w, n)
		w.WriteString("</div>\n")
	case render.RoleContact:
		w.WriteString(`<span class="contact">` + text + "</span>")
	case render.RoleDateRange:
		w.WriteString(`<div class="daterange">` + text + "</div>")
	default:
		if n.Text != "" {
			w.WriteString(htmlTagged("p", n, text))
		}
		htmlChildren(w, n)
	}
}

func htmlChildren(w *strings.Builder, n *render.Node) {
	for _, child := range n.Children {
		htmlNode(w, child)
	}
}

func htmlTagged(tag string, n *render.Node, text string) string {
	if n.Hint != "" {
		return fmt.Sprintf(`<%s class="%s">%s</%s>`, tag, html.EscapeString(n.Hint), text, tag)
	}
	return fmt.Sprintf("<%s>%s</%s>", tag, text, tag)
}
