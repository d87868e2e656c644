package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
)

var (
	ErrNoOpenCompetition = errors.New("no competition is open for registration")
	ErrAlreadyRegistered = errors.New("registration already exists for this competition")
	ErrBadStatus         = errors.New("unknown registration status")
	ErrBadTrack          = errors.New("unknown track")
	ErrMissingFields     = errors.New("missing required fields")
)

// Statuses that count as accepting registrations. "open" is a legacy marker
// some early rows still carry; it reads as published.
var openStatuses = []string{"published", "open"}

// IsRegistrationOpen is the canonical open/closed predicate: published
// status and a deadline strictly in the future. A missing deadline closes
// registration.
func IsRegistrationOpen(c *models.Competition, now time.Time) bool {
	if c == nil {
		return false
	}
	open := false
	for _, s := range openStatuses {
		if c.Status == s {
			open = true
		}
	}
	if !open {
		return false
	}
	return c.RegistrationDeadline != nil && now.Before(*c.RegistrationDeadline)
}

// OpenCompetition returns the competition currently accepting registrations.
// The SQL filter is the same rule as IsRegistrationOpen.
func OpenCompetition(now time.Time) (*models.Competition, error) {
	return openCompetitionTx(db.Conn(), now)
}

func openCompetitionTx(tx *gorm.DB, now time.Time) (*models.Competition, error) {
	var c models.Competition
	err := tx.Where("status IN ? AND registration_deadline IS NOT NULL AND registration_deadline > ?", openStatuses, now).
		Order("edition desc").
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpenCompetition
		}
		return nil, err
	}
	return &c, nil
}

// SubmitRegistration inserts one pending registration for the open
// competition. The precondition checks run inside a single transaction, and
// the duplicate check is backstopped by the unique (user, competition)
// index, so two concurrent submissions cannot both land.
func SubmitRegistration(userID uint, teamName string, track models.Track, notes string) (*models.Registration, error) {
	teamName = strings.TrimSpace(teamName)
	if userID == 0 || teamName == "" {
		return nil, ErrMissingFields
	}
	if !track.Valid() {
		return nil, ErrBadTrack
	}

	var reg models.Registration
	err := db.Conn().Transaction(func(tx *gorm.DB) error {
		comp, err := openCompetitionTx(tx, time.Now())
		if err != nil {
			return err
		}

		var cnt int64
		if err := tx.Model(&models.Registration{}).
			Where("user_id = ? AND competition_id = ?", userID, comp.ID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrAlreadyRegistered
		}

		reg = models.Registration{
			CompetitionID: comp.ID,
			UserID:        userID,
			TeamName:      teamName,
			Track:         track,
			Notes:         strings.TrimSpace(notes),
			Status:        models.StatusPending,
			Reference:     generateReference(),
		}
		if err := tx.Create(&reg).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				return ErrAlreadyRegistered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// SetStatus overwrites a registration's status. Only the four enumerated
// values are ever written; the transition itself is last-write-wins.
func SetStatus(regID uint, status models.RegistrationStatus) error {
	if !status.Valid() {
		return ErrBadStatus
	}
	var reg models.Registration
	if err := db.Conn().First(&reg, regID).Error; err != nil {
		return err
	}
	reg.Status = status
	return db.Conn().Save(&reg).Error
}

// generateReference creates a REG-XXXXXXXX pass code (uppercase hex).
func generateReference() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return "REG-" + strings.ToUpper(hex.EncodeToString(b))
}
