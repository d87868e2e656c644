package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
	svc "github.com/failcon/website/internal/services"
)

// GET /competitions — every publicly visible edition, newest first.
func CompetitionsList(t *template.Template) http.HandlerFunc {
	type compRow struct {
		models.Competition
		StatusLabel string
		EndDateStr  string
		CanApply    bool
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var comps []models.Competition
		if err := db.Conn().Where("status IN ?", []string{"published", "open", "ongoing", "completed"}).
			Order("edition desc").Find(&comps).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}

		now := time.Now()
		rows := make([]compRow, 0, len(comps))
		for i := range comps {
			c := comps[i]
			row := compRow{
				Competition: c,
				StatusLabel: models.CompetitionStatusLabel(c.Status),
				CanApply:    svc.IsRegistrationOpen(&c, now),
			}
			if c.EndDate != nil {
				row.EndDateStr = fmtDate(*c.EndDate)
			}
			rows = append(rows, row)
		}

		render(w, t, "competitions.tmpl", map[string]any{
			"Title":   "역대 대회",
			"Rows":    rows,
			"Profile": currentProfile(r),
		})
	}
}

type ruleGroup struct {
	Category string
	Items    []models.CompetitionRule
}

// GET /competitions/{slug} — slug or edition number.
func CompetitionDetail(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		q := db.Conn().Where("slug = ?", slug)
		if n, err := strconv.Atoi(slug); err == nil {
			q = db.Conn().Where("slug = ? OR edition = ?", slug, n)
		}
		var comp models.Competition
		if err := q.First(&comp).Error; err != nil {
			NotFound(t)(w, r)
			return
		}

		var rules []models.CompetitionRule
		_ = db.Conn().Where("competition_id = ?", comp.ID).
			Order("order_index asc, id asc").Find(&rules).Error

		idx := map[string]int{}
		var groups []ruleGroup
		for _, rule := range rules {
			i, ok := idx[rule.Category]
			if !ok {
				i = len(groups)
				idx[rule.Category] = i
				groups = append(groups, ruleGroup{Category: rule.Category})
			}
			groups[i].Items = append(groups[i].Items, rule)
		}

		data := map[string]any{
			"Title":            comp.Title,
			"Competition":      comp,
			"StatusLabel":      models.CompetitionStatusLabel(comp.Status),
			"RuleGroups":       groups,
			"RegistrationOpen": svc.IsRegistrationOpen(&comp, time.Now()),
			"Profile":          currentProfile(r),
		}
		if comp.RegistrationDeadline != nil {
			data["DeadlineStr"] = fmtDateTime(*comp.RegistrationDeadline)
		}
		if comp.EndDate != nil {
			data["EndDateStr"] = fmtDate(*comp.EndDate)
		}
		render(w, t, "competition_detail.tmpl", data)
	}
}
