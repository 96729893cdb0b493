package doc

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/abhisek/careaid/internal/content"
)

// pageCSS is embedded in the page so a printed export is self-contained.
const pageCSS = `
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 0 auto; color: #1e293b; }
.progressbar { display: flex; gap: 1rem; list-style: none; padding: 0; }
.progressbar li { color: #94a3b8; }
.progressbar li.active { color: #0056b3; font-weight: bold; }
.step { display: none; }
.step.active-step { display: block; }
mark.search-hit { background: #fde68a; }
.pref-bar { height: 10px; background: #eee; border-radius: 5px; position: relative; margin: 5px 2.5rem; }
.pref-dot { position: absolute; top: -2px; width: 14px; height: 14px; background: #0056b3; border-radius: 50%; transform: translateX(-50%); }
body.text-mode .pref-bar { display: none; }
.print-only-header { margin-bottom: 20px; border-bottom: 2px solid #333; padding-bottom: 10px; }
.hidden { display: none; }
@media print {
  header, .progressbar { display: none; }
  body.print-summary-mode .step { display: none; }
  body.print-summary-mode .step[data-kind="summary"] { display: block; }
  body.print-full-mode .step { display: block; }
}
`

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body class="visual-mode">
<header>
<h1>{{.Title}}</h1>
<ol class="progressbar">{{range .Steps}}<li>{{.Title}}</li>{{end}}</ol>
</header>
<main>
{{range $i, $s := .Steps}}<section class="step" id="step-{{inc $i}}" data-kind="{{$s.Kind}}">
{{$s.HTML}}{{if eq $s.Kind "summary"}}<div id="` + SummaryContainerID + `"></div>{{end}}
</section>
{{end}}</main>
</body>
</html>
`))

type pageStep struct {
	Title string
	Kind  string
	HTML  template.HTML
}

type pageData struct {
	Title string
	CSS   template.CSS
	Steps []pageStep
}

// markdown renders step bodies. Raw HTML in a pack is dropped.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderMarkdown converts a Markdown body to an HTML fragment.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderPage produces the full HTML page for a pack.
func renderPage(p *content.Pack) ([]byte, error) {
	data := pageData{
		Title: p.Title,
		CSS:   template.CSS(pageCSS),
	}
	for i, s := range p.Steps {
		body, err := RenderMarkdown(s.Body)
		if err != nil {
			return nil, fmt.Errorf("render step %d: %w", i+1, err)
		}
		data.Steps = append(data.Steps, pageStep{
			Title: s.Title,
			Kind:  string(s.Kind),
			HTML:  template.HTML(body),
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return buf.Bytes(), nil
}
