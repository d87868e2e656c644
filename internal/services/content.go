package services

import (
	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
)

// ListAnnouncements returns public announcements, featured first, newest
// publish date next.
func ListAnnouncements() ([]models.Announcement, error) {
	var as []models.Announcement
	err := db.Conn().Where("is_published = ?", true).
		Order("is_featured desc").
		Order("published_at desc").
		Find(&as).Error
	return as, err
}

// FAQGroup is one category section on the FAQ page.
type FAQGroup struct {
	Category string
	Items    []models.FAQ
}

const defaultFAQCategory = "일반"

// GroupFAQs loads published FAQs in sort order and groups them by category,
// preserving the order categories first appear.
func GroupFAQs() ([]FAQGroup, error) {
	var faqs []models.FAQ
	if err := db.Conn().Where("is_published = ?", true).
		Order("sort_order asc, id asc").
		Find(&faqs).Error; err != nil {
		return nil, err
	}
	return groupFAQs(faqs), nil
}

func groupFAQs(faqs []models.FAQ) []FAQGroup {
	idx := map[string]int{}
	var out []FAQGroup
	for _, f := range faqs {
		cat := f.Category
		if cat == "" {
			cat = defaultFAQCategory
		}
		i, ok := idx[cat]
		if !ok {
			i = len(out)
			idx[cat] = i
			out = append(out, FAQGroup{Category: cat})
		}
		out[i].Items = append(out[i].Items, f)
	}
	return out
}
