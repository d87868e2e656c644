package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
	svc "github.com/failcon/website/internal/services"
)

// Home shows the current edition's hero, featured announcements and the
// apply call-to-action when registration is open.
func Home(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var comp *models.Competition
		var c models.Competition
		if err := db.Conn().Where("status IN ?", []string{"published", "open", "ongoing"}).
			Order("edition desc").First(&c).Error; err == nil {
			comp = &c
		}

		var featured []models.Announcement
		_ = db.Conn().Where("is_published = ? AND is_featured = ?", true, true).
			Order("published_at desc").Limit(3).Find(&featured).Error

		data := map[string]any{
			"Title":    "우주 최고 실패 대회",
			"Profile":  currentProfile(r),
			"Featured": featured,
			"Flash":    MakeFlash(r, "", ""),
		}
		if comp != nil {
			data["Competition"] = comp
			data["StatusLabel"] = models.CompetitionStatusLabel(comp.Status)
			data["RegistrationOpen"] = svc.IsRegistrationOpen(comp, time.Now())
			if comp.RegistrationDeadline != nil {
				data["DeadlineStr"] = fmtDateTime(*comp.RegistrationDeadline)
			}
		}
		render(w, t, "home.tmpl", data)
	}
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// NotFound renders the localized 404 page for unknown routes and missed
// record lookups.
func NotFound(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		render(w, t, "not_found.tmpl", map[string]any{
			"Title":   "페이지를 찾을 수 없습니다",
			"Profile": currentProfile(r),
		})
	}
}
