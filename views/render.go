package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"cop_dashboard/logger"
	"cop_dashboard/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFiles = map[string]string{
	PageHome:        "templates/home.html",
	PageActors:      "templates/actors.html",
	PageCategories:  "templates/categories.html",
	PageActiveUsers: "templates/active_users.html",
	PageOtherStats:  "templates/other_stats.html",
	PageError:       "templates/error.html",
}

var funcs = template.FuncMap{
	"formatCount": utils.FormatCount,
	"langName":    utils.LanguageName,
	"copLabel":    utils.CopLabel,
	"add":         func(a, b int) int { return a + b },
	"sub":         func(a, b int) int { return a - b },
}

// Renderer executes the embedded page templates. Each page is parsed together with the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageFiles))}
	for name, file := range pageFiles {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes the named page to w.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", page)
}

// Write renders into a buffer first so a template error never leaves a half written response.
func (r *Renderer) Write(w http.ResponseWriter, status int, name string, page Page) {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, page); err != nil {
		logger.Error("render page failed", "page", name, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
