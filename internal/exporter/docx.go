package exporter

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"resumeforge/internal/render"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
`

const docxDocumentFooter = `<w:sectPr><w:pgMar w:top="1080" w:right="1080" w:bottom="1080" w:left="1080"/></w:sectPr>
</w:body>
</w:document>`

// writeDOCX serializes a document tree into a minimal WordprocessingML
// package. Layout hints collapse to a single flow of styled paragraphs,
// same policy as the LaTeX writer.
func writeDOCX(tree *render.Node) ([]byte, error) {
	var body strings.Builder
	for _, child := range tree.Children {
		docxNode(&body, child)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", docxDocumentHeader + body.String() + docxDocumentFooter},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize package: %w", err)
	}
	return buf.Bytes(), nil
}

func docxNode(b *strings.Builder, n *render.Node) {
	switch n.Role {
	case render.RoleHeading:
		docxParagraph(b, n.Text, `<w:b/><w:sz w:val="40"/>`, "")
	case render.RoleSection:
		if n.Text != "" {
			docxParagraph(b, strings.ToUpper(n.Text), `<w:b/><w:sz w:val="26"/><w:color w:val="444444"/>`, `<w:spacing w:before="240" w:after="80"/><w:pBdr><w:bottom w:val="single" w:sz="4" w:space="1" w:color="AAAAAA"/></w:pBdr>`)
		}
		docxChildren(b, n)
	case render.RoleSubheading:
		docxParagraph(b, n.Text, `<w:b/>`, `<w:spacing w:before="120"/>`)
	case render.RoleParagraph, render.RoleEntry:
		if n.Text != "" {
			docxParagraph(b, n.Text, "", "")
		}
		docxChildren(b, n)
	case render.RoleList:
		docxChildren(b, n)
	case render.RoleItem:
		docxParagraph(b, "• "+n.Text, "", `<w:ind w:left="360"/>`)
	case render.RoleBadge, render.RoleContact:
		// Inline runs are gathered by the parent below
	case render.RoleDateRange:
		docxParagraph(b, n.Text, `<w:i/><w:color w:val="666666"/><w:sz w:val="20"/>`, "")
	default:
		if n.Text != "" {
			docxParagraph(b, n.Text, "", "")
		}
		docxChildren(b, n)
	}

	// Badge and contact children render as one joined line
	if inline := docxInlineRun(n); inline != "" {
		docxParagraph(b, inline, "", "")
	}
}

func docxChildren(b *strings.Builder, n *render.Node) {
	for _, child := range n.Children {
		docxNode(b, child)
	}
}

func docxInlineRun(n *render.Node) string {
	var parts []string
	for _, child := range n.Children {
		if child.Role == render.RoleBadge || child.Role == render.RoleContact {
			parts = append(parts, child.Text)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	sep := " · "
	if n.Children[0].Role == render.RoleBadge {
		sep = "   "
	}
	return strings.Join(parts, sep)
}

func docxParagraph(b *strings.Builder, text, runProps, paraProps string) {
	b.WriteString("<w:p>")
	if paraProps != "" {
		b.WriteString("<w:pPr>" + paraProps + "</w:pPr>")
	}
	b.WriteString("<w:r>")
	if runProps != "" {
		b.WriteString("<w:rPr>" + runProps + "</w:rPr>")
	}
	b.WriteString(`<w:t xml:space="preserve">` + docxEscape(text) + "</w:t></w:r></w:p>\n")
}

func docxEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
