package profile

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// RenderHeader renders the identity block.
func RenderHeader(h Header) (template.HTML, error) {
	return execute("header", h)
}

// RenderStats renders the followers, following and repositories counters.
func RenderStats(s Stats) (template.HTML, error) {
	return execute("stats", s)
}

// RenderAdditionalInfo renders company, blog and twitter.
func RenderAdditionalInfo(info AdditionalInfo) (template.HTML, error) {
	return execute("info", info)
}

// RenderRepos renders one card per repository. An empty list renders the
// single "No repositories found" placeholder.
func RenderRepos(cards []RepoCard) (template.HTML, error) {
	return execute("repos", cards)
}

// RenderProfile renders all profile sections in display order.
func RenderProfile(p *Profile) (template.HTML, error) {
	if p == nil {
		return "", nil
	}
	return execute("profile", p)
}

// Render writes the complete search page for state to w.
func Render(w io.Writer, state ViewState) error {
	if err := templates.ExecuteTemplate(w, "page", state); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
