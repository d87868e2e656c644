package handlers

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
)

type myRegRow struct {
	TeamName    string
	Competition string
	TrackLabel  string
	Badge       models.Badge
	CreatedStr  string
	Notes       string
	Reference   string
	IsFinalist  bool
}

// GET /my-registrations
func MyRegistrations(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := currentProfile(r)
		if p == nil {
			loginRedirect(w, r)
			return
		}

		var regs []models.Registration
		_ = db.Conn().Preload("Competition").
			Where("user_id = ?", p.ID).
			Order("created_at desc").
			Find(&regs).Error

		rows := make([]myRegRow, 0, len(regs))
		for _, reg := range regs {
			rows = append(rows, myRegRow{
				TeamName:    reg.TeamName,
				Competition: reg.Competition.Title,
				TrackLabel:  reg.Track.Label(),
				Badge:       reg.Status.Badge(),
				CreatedStr:  fmtDate(reg.CreatedAt),
				Notes:       reg.Notes,
				Reference:   reg.Reference,
				IsFinalist:  reg.Status == models.StatusFinalist,
			})
		}

		render(w, t, "my_registrations.tmpl", map[string]any{
			"Title":   "내 참가 신청",
			"Rows":    rows,
			"Profile": p,
			"Flash":   MakeFlash(r, "", ""),
		})
	}
}

// GET /my-registrations/{reference}/qr.png — finals-day pass, owner-only.
func MyRegistrationQR(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r)
	ref := chi.URLParam(r, "reference")
	if ref == "" {
		http.NotFound(w, r)
		return
	}

	var reg models.Registration
	if err := db.Conn().Where("reference = ? AND user_id = ?", ref, userID).
		First(&reg).Error; err != nil {
		http.NotFound(w, r)
		return
	}

	png, err := qrcode.Encode(reg.Reference, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
