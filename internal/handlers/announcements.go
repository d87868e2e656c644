package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
	svc "github.com/failcon/website/internal/services"
)

type announcementRow struct {
	models.Announcement
	DateStr string
}

func announcementDate(a models.Announcement) string {
	if a.PublishedAt != nil {
		return fmtDate(*a.PublishedAt)
	}
	return fmtDate(a.CreatedAt)
}

// GET /announcements — published only, featured first.
func AnnouncementsList(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		as, err := svc.ListAnnouncements()
		if err != nil {
			http.Error(w, "db error", 500)
			return
		}
		rows := make([]announcementRow, 0, len(as))
		for _, a := range as {
			rows = append(rows, announcementRow{Announcement: a, DateStr: announcementDate(a)})
		}
		render(w, t, "announcements.tmpl", map[string]any{
			"Title":   "공지사항",
			"Rows":    rows,
			"Profile": currentProfile(r),
		})
	}
}

// GET /announcements/{id} — published only; drafts 404 for the public.
func AnnouncementDetail(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil || id <= 0 {
			NotFound(t)(w, r)
			return
		}
		var a models.Announcement
		if err := db.Conn().Where("is_published = ?", true).First(&a, id).Error; err != nil {
			NotFound(t)(w, r)
			return
		}
		render(w, t, "announcement_detail.tmpl", map[string]any{
			"Title":        a.Title,
			"Announcement": a,
			"DateStr":      announcementDate(a),
			"Profile":      currentProfile(r),
		})
	}
}
