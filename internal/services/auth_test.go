package services

import (
	"errors"
	"testing"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
)

func TestSignUpAndAuthenticate(t *testing.T) {
	initTestDB(t)

	p, err := SignUp("  New@Example.COM ", "correct-horse", "홍길동")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if p.Email != "new@example.com" {
		t.Errorf("email not normalized: %q", p.Email)
	}
	if p.Role != models.RoleUser {
		t.Errorf("role = %q, want user", p.Role)
	}
	if p.PasswordHash == "correct-horse" || p.PasswordHash == "" {
		t.Error("password stored without hashing")
	}

	got, err := Authenticate("new@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("authenticated id = %d, want %d", got.ID, p.ID)
	}

	if _, err := Authenticate("new@example.com", "wrong"); !errors.Is(err, ErrBadLogin) {
		t.Errorf("wrong password err = %v, want ErrBadLogin", err)
	}
	if _, err := Authenticate("nobody@example.com", "correct-horse"); !errors.Is(err, ErrBadLogin) {
		t.Errorf("unknown email err = %v, want ErrBadLogin", err)
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	initTestDB(t)

	if _, err := SignUp("dup@example.com", "password1", ""); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	if _, err := SignUp("DUP@example.com", "password2", ""); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestSignUp_BadEmail(t *testing.T) {
	initTestDB(t)
	for _, email := range []string{"", "not-an-email", "a b@example.com"} {
		if _, err := SignUp(email, "password1", ""); !errors.Is(err, ErrBadEmail) {
			t.Errorf("SignUp(%q) err = %v, want ErrBadEmail", email, err)
		}
	}
}

func TestResolveRole(t *testing.T) {
	initTestDB(t)

	user := createProfile(t, "user@example.com")
	admin := models.Profile{Email: "admin@example.com", Role: models.RoleAdmin}
	if err := db.Conn().Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}

	if got := ResolveRole(admin.ID); got != models.RoleAdmin {
		t.Errorf("admin role = %q", got)
	}
	if got := ResolveRole(user.ID); got != models.RoleUser {
		t.Errorf("user role = %q", got)
	}
	// lookup failures fall back to the lowest privilege
	if got := ResolveRole(99999); got != models.RoleUser {
		t.Errorf("missing profile role = %q, want user", got)
	}
	if got := ResolveRole(0); got != models.RoleUser {
		t.Errorf("zero id role = %q, want user", got)
	}
}
