package latex

import "text/template"

// LaTeX is full of curly braces, templates therefore use << >> as delimiters.

var headerTmpl = template.Must(template.New("header").Delims("<<", ">>").Parse(
	`\documentclass<< if .AspectRatio >>[aspectratio=<< .AspectRatio >>]<< end >>{beamer}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage[normalem]{ulem}
\usepackage{graphicx}
\usepackage{listings}
\lstset{basicstyle=<< .CodeStyle >>, breaklines=true}

\title{<< .Title >>}
\author{<< .Author >>}
\date{\today}

\begin{document}

\frame{\titlepage}

`))

var frameTmpl = template.Must(template.New("frame").Delims("<<", ">>").Parse(
	`\begin{frame}<< if .Fragile >>[fragile]<< end >>
\frametitle{<< .Title >>}
<< .Body >>\end{frame}

`))

const footer = "\\end{document}\n"

type headerParams struct {
	AspectRatio string
	CodeStyle   string
	Title       string
	Author      string
}

type frameParams struct {
	Fragile bool
	Title   string
	Body    string
}
