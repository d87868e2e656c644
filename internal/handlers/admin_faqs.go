package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
)

// LIST
func AdminFAQs(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var faqs []models.FAQ
		if err := db.Conn().Order("sort_order asc, id asc").Find(&faqs).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}
		render(w, t, "admin/faqs.tmpl", map[string]any{
			"Title": "관리자 • FAQ",
			"FAQs":  faqs,
			"Flash": MakeFlash(r, "", ""),
		})
	}
}

// NEW
func AdminFAQNewForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, t, "admin/faq_new.tmpl", map[string]any{
			"Title": "관리자 • 새 FAQ",
			"Flash": MakeFlash(r, "", ""),
		})
	}
}

// CREATE
func AdminFAQCreate(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	question := strings.TrimSpace(r.FormValue("question"))
	answer := strings.TrimSpace(r.FormValue("answer"))
	if question == "" || answer == "" {
		http.Redirect(w, r, "/admin/faq/new?error=missing", http.StatusSeeOther)
		return
	}
	sortOrder, _ := strconv.Atoi(r.FormValue("sort_order"))

	f := models.FAQ{
		Question:    question,
		Answer:      answer,
		Category:    strings.TrimSpace(r.FormValue("category")),
		SortOrder:   sortOrder,
		IsPublished: r.FormValue("is_published") == "on",
	}
	if err := db.Conn().Create(&f).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/faq?ok=saved", http.StatusSeeOther)
}

// EDIT
func AdminFAQEditForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(r, "id"))
		var f models.FAQ
		if err := db.Conn().First(&f, id).Error; err != nil {
			http.NotFound(w, r)
			return
		}
		render(w, t, "admin/faq_edit.tmpl", map[string]any{
			"Title": "관리자 • FAQ 수정",
			"FAQ":   f,
		})
	}
}

// UPDATE
func AdminFAQUpdate(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var f models.FAQ
	if err := db.Conn().First(&f, id).Error; err != nil {
		http.NotFound(w, r)
		return
	}

	question := strings.TrimSpace(r.FormValue("question"))
	answer := strings.TrimSpace(r.FormValue("answer"))
	if question == "" || answer == "" {
		http.Redirect(w, r, "/admin/faq?error=missing", http.StatusSeeOther)
		return
	}

	f.Question = question
	f.Answer = answer
	f.Category = strings.TrimSpace(r.FormValue("category"))
	f.SortOrder, _ = strconv.Atoi(r.FormValue("sort_order"))
	f.IsPublished = r.FormValue("is_published") == "on"

	if err := db.Conn().Save(&f).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/faq?ok=saved", http.StatusSeeOther)
}
