package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
	svc "github.com/failcon/website/internal/services"
)

func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	ref := r.Header.Get("Referer")
	if ref == "" {
		ref = fallback
	}
	http.Redirect(w, r, ref, http.StatusSeeOther)
}

type reviewRow struct {
	ID          uint
	TeamName    string
	Applicant   string
	Email       string
	Competition string
	TrackLabel  string
	CreatedStr  string
	Notes       string
	Badge       models.Badge
	Actions     []models.StatusAction
}

// GET /admin/registrations — the review queue, newest first. The action
// buttons per row come from the status's NextActions.
func AdminRegistrations(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var regs []models.Registration
		if err := db.Conn().Preload("User").Preload("Competition").
			Order("created_at desc").Find(&regs).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}

		rows := make([]reviewRow, 0, len(regs))
		for _, reg := range regs {
			applicant := reg.User.FullName
			if applicant == "" {
				applicant = reg.User.Email
			}
			rows = append(rows, reviewRow{
				ID:          reg.ID,
				TeamName:    reg.TeamName,
				Applicant:   applicant,
				Email:       reg.User.Email,
				Competition: reg.Competition.Title,
				TrackLabel:  reg.Track.Label(),
				CreatedStr:  fmtDate(reg.CreatedAt),
				Notes:       reg.Notes,
				Badge:       reg.Status.Badge(),
				Actions:     reg.Status.NextActions(),
			})
		}

		render(w, t, "admin/registrations.tmpl", map[string]any{
			"Title": "관리자 • 참가 신청",
			"Rows":  rows,
			"Flash": MakeFlash(r, "", ""),
		})
	}
}

// POST /admin/registrations/{id}/status
func AdminRegSetStatus(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	status := models.RegistrationStatus(r.FormValue("status"))
	if err := svc.SetStatus(uint(id), status); err != nil {
		switch {
		case errors.Is(err, svc.ErrBadStatus):
			http.Redirect(w, r, "/admin/registrations?error=bad_status", http.StatusSeeOther)
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		default:
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}
	redirectBack(w, r, "/admin/registrations?ok=status_set")
}
