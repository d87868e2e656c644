package handlers

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"
)

var templatesBase = findTemplatesBase()

// findTemplatesBase locates the templates directory whether the process runs
// from the repo root or from a package directory under go test.
func findTemplatesBase() string {
	dir := "templates"
	for i := 0; i < 4; i++ {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			return dir
		}
		dir = filepath.Join("..", dir)
	}
	return "templates"
}

// TemplatesDir is the resolved base directory for layouts, partials and
// pages.
func TemplatesDir() string {
	return templatesBase
}

func pagePath(rel string) string {
	return filepath.Join(templatesBase, "pages", rel)
}

// render parses one page template into a clone of the base set and executes
// it. The page name doubles as the template name, e.g. "admin/login.tmpl".
func render(w http.ResponseWriter, t *template.Template, page string, data map[string]any) {
	view, err := t.Clone()
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if _, err := view.ParseFiles(pagePath(page)); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if err := view.ExecuteTemplate(w, page, data); err != nil {
		http.Error(w, err.Error(), 500)
	}
}
