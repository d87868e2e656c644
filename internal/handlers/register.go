package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
	svc "github.com/failcon/website/internal/services"
)

// GET /register — one registration per user: existing applicants go
// straight to their list.
func RegisterForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentProfile(r)
		if p == nil {
			loginRedirect(w, r)
			return
		}

		var cnt int64
		_ = db.Conn().Model(&models.Registration{}).
			Where("user_id = ?", p.ID).Count(&cnt).Error
		if cnt > 0 {
			http.Redirect(w, r, "/my-registrations", http.StatusSeeOther)
			return
		}

		data := map[string]any{
			"Title":   "참가 신청",
			"Profile": p,
			"Tracks": []models.Track{
				models.TrackYouth,
				models.TrackGeneral,
			},
			"Flash": MakeFlash(r, "", ""),
		}
		if comp, err := svc.OpenCompetition(time.Now()); err == nil {
			data["Competition"] = comp
			if comp.RegistrationDeadline != nil {
				data["DeadlineStr"] = fmtDateTime(*comp.RegistrationDeadline)
			}
		}
		render(w, t, "register.tmpl", data)
	}
}

// POST /register
func RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	userID := userIDFrom(r)
	teamName := strings.TrimSpace(r.FormValue("team_name"))
	track := models.Track(r.FormValue("track"))
	notes := r.FormValue("notes")

	if teamName == "" {
		http.Redirect(w, r, "/register?error=missing", http.StatusSeeOther)
		return
	}

	_, err := svc.SubmitRegistration(userID, teamName, track, notes)
	switch {
	case err == nil:
		http.Redirect(w, r, "/my-registrations?ok=registered", http.StatusSeeOther)
	case errors.Is(err, svc.ErrNoOpenCompetition):
		http.Redirect(w, r, "/register?error=no_open_competition", http.StatusSeeOther)
	case errors.Is(err, svc.ErrAlreadyRegistered):
		http.Redirect(w, r, "/my-registrations?error=already_registered", http.StatusSeeOther)
	case errors.Is(err, svc.ErrBadTrack):
		http.Redirect(w, r, "/register?error=invalid_track", http.StatusSeeOther)
	case errors.Is(err, svc.ErrMissingFields):
		http.Redirect(w, r, "/register?error=missing", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/register?error=db", http.StatusSeeOther)
	}
}
