package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
)

func TestIsRegistrationOpen(t *testing.T) {
	future := time.Now().Add(time.Second)
	past := time.Now().Add(-time.Second)

	cases := []struct {
		name     string
		status   string
		deadline *time.Time
		want     bool
	}{
		{"published with future deadline", "published", &future, true},
		{"legacy open status", "open", &future, true},
		{"deadline passed", "published", &past, false},
		{"no deadline", "published", nil, false},
		{"draft", "draft", &future, false},
		{"ongoing", "ongoing", &future, false},
	}
	for _, c := range cases {
		comp := &models.Competition{Status: c.status, RegistrationDeadline: c.deadline}
		if got := IsRegistrationOpen(comp, time.Now()); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
	if IsRegistrationOpen(nil, time.Now()) {
		t.Error("nil competition should not be open")
	}
}

func TestOpenCompetition_PicksLatestEdition(t *testing.T) {
	initTestDB(t)
	createOpenCompetition(t, 1)
	createOpenCompetition(t, 2)

	c, err := OpenCompetition(time.Now())
	if err != nil {
		t.Fatalf("OpenCompetition: %v", err)
	}
	if c.Edition != 2 {
		t.Errorf("edition = %d, want 2", c.Edition)
	}
}

func TestSubmitRegistration_NoOpenCompetition(t *testing.T) {
	initTestDB(t)
	p := createProfile(t, "a@example.com")

	_, err := SubmitRegistration(p.ID, "팀 낙하산", models.TrackGeneral, "")
	if !errors.Is(err, ErrNoOpenCompetition) {
		t.Fatalf("err = %v, want ErrNoOpenCompetition", err)
	}
	var cnt int64
	db.Conn().Model(&models.Registration{}).Count(&cnt)
	if cnt != 0 {
		t.Errorf("registrations = %d after failed submit, want 0", cnt)
	}
}

func TestSubmitRegistration_CreatesPending(t *testing.T) {
	initTestDB(t)
	p := createProfile(t, "a@example.com")
	comp := createOpenCompetition(t, 1)

	reg, err := SubmitRegistration(p.ID, "  팀 낙하산  ", models.TrackYouth, "첫 도전입니다")
	if err != nil {
		t.Fatalf("SubmitRegistration: %v", err)
	}
	if reg.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", reg.Status)
	}
	if reg.CompetitionID != comp.ID {
		t.Errorf("competition id = %d, want %d", reg.CompetitionID, comp.ID)
	}
	if reg.TeamName != "팀 낙하산" {
		t.Errorf("team name not trimmed: %q", reg.TeamName)
	}
	if !regRefPattern.MatchString(reg.Reference) {
		t.Errorf("reference %q does not match %s", reg.Reference, regRefPattern)
	}
}

func TestSubmitRegistration_Duplicate(t *testing.T) {
	initTestDB(t)
	p := createProfile(t, "a@example.com")
	createOpenCompetition(t, 1)

	if _, err := SubmitRegistration(p.ID, "팀 하나", models.TrackGeneral, ""); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	_, err := SubmitRegistration(p.ID, "팀 둘", models.TrackGeneral, "")
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("second submit err = %v, want ErrAlreadyRegistered", err)
	}
	var cnt int64
	db.Conn().Model(&models.Registration{}).Where("user_id = ?", p.ID).Count(&cnt)
	if cnt != 1 {
		t.Errorf("registrations = %d, want 1", cnt)
	}
}

func TestSubmitRegistration_Validation(t *testing.T) {
	initTestDB(t)
	p := createProfile(t, "a@example.com")
	createOpenCompetition(t, 1)

	if _, err := SubmitRegistration(p.ID, "   ", models.TrackGeneral, ""); !errors.Is(err, ErrMissingFields) {
		t.Errorf("blank team name: err = %v, want ErrMissingFields", err)
	}
	if _, err := SubmitRegistration(0, "팀", models.TrackGeneral, ""); !errors.Is(err, ErrMissingFields) {
		t.Errorf("zero user: err = %v, want ErrMissingFields", err)
	}
	if _, err := SubmitRegistration(p.ID, "팀", models.Track("pro"), ""); !errors.Is(err, ErrBadTrack) {
		t.Errorf("bad track: err = %v, want ErrBadTrack", err)
	}
}

func TestSetStatus(t *testing.T) {
	initTestDB(t)
	p := createProfile(t, "a@example.com")
	createOpenCompetition(t, 1)
	reg, err := SubmitRegistration(p.ID, "팀", models.TrackGeneral, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := SetStatus(reg.ID, models.StatusApproved); err != nil {
		t.Fatalf("SetStatus approved: %v", err)
	}
	var got models.Registration
	db.Conn().First(&got, reg.ID)
	if got.Status != models.StatusApproved {
		t.Errorf("status = %q, want approved", got.Status)
	}

	if err := SetStatus(reg.ID, "waitlisted"); !errors.Is(err, ErrBadStatus) {
		t.Errorf("bad status err = %v, want ErrBadStatus", err)
	}
	db.Conn().First(&got, reg.ID)
	if got.Status != models.StatusApproved {
		t.Errorf("status changed on rejected write: %q", got.Status)
	}

	if err := SetStatus(99999, models.StatusRejected); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing id err = %v, want record not found", err)
	}
}

var regRefPattern = regexp.MustCompile(`^REG-[0-9A-F]{8}$`)

func TestGenerateReference(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		ref := generateReference()
		if !regRefPattern.MatchString(ref) {
			t.Fatalf("reference %q does not match %s", ref, regRefPattern)
		}
		seen[ref] = true
	}
	if len(seen) < 190 {
		t.Errorf("only %d distinct references out of 200", len(seen))
	}
}
