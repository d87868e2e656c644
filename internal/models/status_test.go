package models

import "testing"

func TestRegistrationStatusValid(t *testing.T) {
	for _, s := range []RegistrationStatus{StatusPending, StatusApproved, StatusRejected, StatusFinalist} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []RegistrationStatus{"", "canceled", "PENDING", "waitlisted"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

// TestBadgeFallback verifies unknown statuses render with the pending
// presentation instead of an empty badge.
func TestBadgeFallback(t *testing.T) {
	want := StatusPending.Badge()
	for _, s := range []RegistrationStatus{"", "bogus"} {
		if got := s.Badge(); got != want {
			t.Errorf("Badge(%q) = %+v, want pending presentation %+v", s, got, want)
		}
	}
	if StatusFinalist.Badge().Label != "본선 진출" {
		t.Errorf("finalist label = %q", StatusFinalist.Badge().Label)
	}
}

// TestNextActions_FinalistGate verifies the finalist transition is only
// offered from approved.
func TestNextActions_FinalistGate(t *testing.T) {
	offers := func(s RegistrationStatus, target RegistrationStatus) bool {
		for _, a := range s.NextActions() {
			if a.Target == target {
				return true
			}
		}
		return false
	}

	if !offers(StatusApproved, StatusFinalist) {
		t.Error("approved should offer finalist")
	}
	for _, s := range []RegistrationStatus{StatusPending, StatusRejected, StatusFinalist} {
		if offers(s, StatusFinalist) {
			t.Errorf("%q should not offer finalist", s)
		}
	}
}

// TestNextActions_NeverCurrent verifies no action re-enters the current
// state.
func TestNextActions_NeverCurrent(t *testing.T) {
	for _, s := range []RegistrationStatus{StatusPending, StatusApproved, StatusRejected, StatusFinalist} {
		for _, a := range s.NextActions() {
			if a.Target == s {
				t.Errorf("%q offers a transition to itself", s)
			}
			if !a.Target.Valid() {
				t.Errorf("%q offers invalid target %q", s, a.Target)
			}
		}
	}
}
