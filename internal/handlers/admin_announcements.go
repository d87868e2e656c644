package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
)

// LIST — drafts included, unlike the public page.
func AdminAnnouncements(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var as []models.Announcement
		if err := db.Conn().Order("created_at desc").Find(&as).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}
		render(w, t, "admin/announcements.tmpl", map[string]any{
			"Title":         "관리자 • 공지사항",
			"Announcements": as,
			"Flash":         MakeFlash(r, "", ""),
		})
	}
}

// NEW
func AdminAnnouncementNewForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, t, "admin/announcement_new.tmpl", map[string]any{
			"Title": "관리자 • 새 공지사항",
			"Flash": MakeFlash(r, "", ""),
		})
	}
}

// CREATE
func AdminAnnouncementCreate(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))
	if title == "" || content == "" {
		http.Redirect(w, r, "/admin/announcements/new?error=missing", http.StatusSeeOther)
		return
	}

	a := models.Announcement{
		Title:       title,
		Excerpt:     strings.TrimSpace(r.FormValue("excerpt")),
		Content:     content,
		IsPublished: r.FormValue("is_published") == "on",
		IsFeatured:  r.FormValue("is_featured") == "on",
		AuthorID:    userIDFrom(r),
	}
	if a.IsPublished {
		now := time.Now()
		a.PublishedAt = &now
	}
	if err := db.Conn().Create(&a).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/announcements?ok=saved", http.StatusSeeOther)
}

// EDIT
func AdminAnnouncementEditForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(r, "id"))
		var a models.Announcement
		if err := db.Conn().First(&a, id).Error; err != nil {
			http.NotFound(w, r)
			return
		}
		render(w, t, "admin/announcement_edit.tmpl", map[string]any{
			"Title":        "관리자 • 공지사항 수정",
			"Announcement": a,
		})
	}
}

// UPDATE — PublishedAt is stamped the first time a draft goes live.
func AdminAnnouncementUpdate(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var a models.Announcement
	if err := db.Conn().First(&a, id).Error; err != nil {
		http.NotFound(w, r)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))
	if title == "" || content == "" {
		http.Redirect(w, r, "/admin/announcements?error=missing", http.StatusSeeOther)
		return
	}

	a.Title = title
	a.Excerpt = strings.TrimSpace(r.FormValue("excerpt"))
	a.Content = content
	a.IsFeatured = r.FormValue("is_featured") == "on"

	wasPublished := a.IsPublished
	a.IsPublished = r.FormValue("is_published") == "on"
	if a.IsPublished && !wasPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	if err := db.Conn().Save(&a).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/announcements?ok=saved", http.StatusSeeOther)
}
