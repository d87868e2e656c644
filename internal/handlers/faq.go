package handlers

import (
	"html/template"
	"net/http"

	svc "github.com/failcon/website/internal/services"
)

// GET /faq — published entries grouped by category.
func FAQPage(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := svc.GroupFAQs()
		if err != nil {
			http.Error(w, "db error", 500)
			return
		}
		render(w, t, "faq.tmpl", map[string]any{
			"Title":   "자주 묻는 질문",
			"Groups":  groups,
			"Profile": currentProfile(r),
		})
	}
}
