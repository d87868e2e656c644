package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
)

func initTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	if err := db.Init(); err != nil {
		t.Fatalf("db init: %v", err)
	}
}

func createProfile(t *testing.T, email string) models.Profile {
	t.Helper()
	p := models.Profile{Email: email, FullName: "테스터", Role: models.RoleUser}
	if err := db.Conn().Create(&p).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return p
}

func createOpenCompetition(t *testing.T, edition int) models.Competition {
	t.Helper()
	deadline := time.Now().Add(48 * time.Hour)
	c := models.Competition{
		Edition:              edition,
		Slug:                 "failcon-" + string(rune('0'+edition)),
		Title:                "우주 최고 실패 대회",
		Status:               "published",
		RegistrationDeadline: &deadline,
	}
	if err := db.Conn().Create(&c).Error; err != nil {
		t.Fatalf("create competition: %v", err)
	}
	return c
}
