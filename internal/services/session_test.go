package services

import (
	"errors"
	"strings"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	token, err := IssueSession(42)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}
	id, err := ParseSession(token)
	if err != nil {
		t.Fatalf("ParseSession: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
}

func TestParseSession_Tampered(t *testing.T) {
	token, err := IssueSession(42)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	// break the signature
	parts := strings.Split(token, ".")
	parts[2] = "x" + parts[2]
	if _, err := ParseSession(strings.Join(parts, ".")); !errors.Is(err, ErrBadSession) {
		t.Errorf("tampered token err = %v, want ErrBadSession", err)
	}

	if _, err := ParseSession("not-a-token"); !errors.Is(err, ErrBadSession) {
		t.Errorf("garbage token err = %v, want ErrBadSession", err)
	}
	if _, err := ParseSession(""); !errors.Is(err, ErrBadSession) {
		t.Errorf("empty token err = %v, want ErrBadSession", err)
	}
}

func TestParseSession_WrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret-one")
	token, err := IssueSession(7)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	t.Setenv("SESSION_SECRET", "secret-two")
	if _, err := ParseSession(token); !errors.Is(err, ErrBadSession) {
		t.Errorf("cross-secret token err = %v, want ErrBadSession", err)
	}
}

func TestParseSession_ZeroID(t *testing.T) {
	token, err := IssueSession(0)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}
	if _, err := ParseSession(token); !errors.Is(err, ErrBadSession) {
		t.Errorf("zero id token err = %v, want ErrBadSession", err)
	}
}
