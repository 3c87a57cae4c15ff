package exporter

import (
	"strings"

	"resumeforge/internal/render"
)

const latexPreamble = `\documentclass[10pt]{article}
\usepackage[margin=1.8cm]{geometry}
\usepackage[T1]{fontenc}
\usepackage[utf8]{inputenc}
\usepackage{enumitem}
\usepackage{xcolor}
\usepackage{hyperref}
\setlength{\parindent}{0pt}
\pagestyle{empty}
\newcommand{\sectionrule}{\vspace{2pt}\hrule\vspace{6pt}}
\begin{document}
`

// LaTeX escaping (minimal)
var latexReplacer = strings.NewReplacer(
	"\\", "\\textbackslash{}",
	"{", "\\{",
	"}", "\\}",
	"$", "\\$",
	"&", "\\&",
	"#", "\\#",
	"_", "\\_",
	"%", "\\%",
	"~", "\\textasciitilde{}",
	"^", "\\textasciicircum{}",
)

func escapeLaTeX(s string) string { return latexReplacer.Replace(s) }

// writeLaTeX serializes a document tree into a compilable LaTeX article.
// Layout hints collapse to a single column: print output favors
// readability over screen geometry.
func writeLaTeX(tree *render.Node) (string, error) {
	var b strings.Builder
	b.WriteString(latexPreamble)
	for _, child := range tree.Children {
		latexNode(&b, child)
	}
	b.WriteString("\\end{document}\n")
	return b.String(), nil
}

func latexNode(b *strings.Builder, n *render.Node) {
	text := escapeLaTeX(n.Text)

	switch n.Role {
	case render.RoleRow, render.RoleColumn, render.RoleEntry:
		if n.Role == render.RoleEntry && n.Text != "" {
			b.WriteString(text + "\\par\n")
		}
		latexChildren(b, n)
		if n.Role == render.RoleEntry {
			b.WriteString("\\vspace{4pt}\n")
		}
	case render.RoleSection:
		if n.Text != "" {
			b.WriteString("\\vspace{8pt}{\\large\\bfseries " + text + "}\\sectionrule\n")
		}
		latexChildren(b, n)
	case render.RoleHeading:
		b.WriteString("{\\LARGE\\bfseries " + text + "}\\par\n\\vspace{2pt}\n")
	case render.RoleSubheading:
		b.WriteString("{\\bfseries " + text + "}\\par\n")
	case render.RoleParagraph:
		if text != "" {
			b.WriteString(text + "\\par\n")
		}
	case render.RoleList:
		if len(n.Children) > 0 {
			b.WriteString("\\begin{itemize}[leftmargin=14pt,itemsep=1pt,topsep=2pt]\n")
			latexChildren(b, n)
			b.WriteString("\\end{itemize}\n")
		}
	case render.RoleItem:
		b.WriteString("\\item " + text + "\n")
	case render.RoleBadge:
		b.WriteString("\\fbox{\\small " + text + "}\\hspace{3pt}")
	case render.RoleContact:
		if n.Link != "" {
			b.WriteString("\\href{" + n.Link + "}{" + text + "}\\quad ")
		} else {
			b.WriteString(text + "\\quad ")
		}
	case render.RoleDateRange:
		b.WriteString("{\\small\\itshape\\color{gray} " + text + "}\\par\n")
	default:
		if text != "" {
			b.WriteString(text + "\\par\n")
		}
		latexChildren(b, n)
	}
}

func latexChildren(b *strings.Builder, n *render.Node) {
	for _, child := range n.Children {
		latexNode(b, child)
	}
	// Badge and contact runs are inline; terminate the line once
	if len(n.Children) > 0 {
		last := n.Children[len(n.Children)-1].Role
		if last == render.RoleBadge || last == render.RoleContact {
			b.WriteString("\\par\n")
		}
	}
}
