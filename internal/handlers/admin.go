package handlers

import (
	"html/template"
	"net/http"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
)

// GET /admin — aggregate counts plus the five most recent registrations.
func AdminDashboard(t *template.Template) http.HandlerFunc {
	type recentRow struct {
		TeamName  string
		Applicant string
		Badge     models.Badge
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var regCount, annCount, faqCount, pendingCount int64
		_ = db.Conn().Model(&models.Registration{}).Count(&regCount).Error
		_ = db.Conn().Model(&models.Announcement{}).Count(&annCount).Error
		_ = db.Conn().Model(&models.FAQ{}).Count(&faqCount).Error
		_ = db.Conn().Model(&models.Registration{}).
			Where("status = ?", models.StatusPending).Count(&pendingCount).Error

		var regs []models.Registration
		_ = db.Conn().Preload("User").
			Order("created_at desc").Limit(5).Find(&regs).Error

		recent := make([]recentRow, 0, len(regs))
		for _, reg := range regs {
			applicant := reg.User.FullName
			if applicant == "" {
				applicant = reg.User.Email
			}
			recent = append(recent, recentRow{
				TeamName:  reg.TeamName,
				Applicant: applicant,
				Badge:     reg.Status.Badge(),
			})
		}

		render(w, t, "admin/dashboard.tmpl", map[string]any{
			"Title":             "관리자 대시보드",
			"RegistrationCount": regCount,
			"AnnouncementCount": annCount,
			"FAQCount":          faqCount,
			"PendingCount":      pendingCount,
			"Recent":            recent,
			"Profile":           currentProfile(r),
		})
	}
}
