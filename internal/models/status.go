package models

// RegistrationStatus is the registration lifecycle state. Only these four
// values are ever written; SetStatus rejects anything else.
type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusApproved RegistrationStatus = "approved"
	StatusRejected RegistrationStatus = "rejected"
	StatusFinalist RegistrationStatus = "finalist"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusFinalist:
		return true
	}
	return false
}

// Badge is the status presentation used on every page that shows a
// registration.
type Badge struct {
	Label string
	Color string
}

var statusBadges = map[RegistrationStatus]Badge{
	StatusPending:  {Label: "검토 중", Color: "yellow"},
	StatusApproved: {Label: "승인됨", Color: "green"},
	StatusRejected: {Label: "거절됨", Color: "red"},
	StatusFinalist: {Label: "본선 진출", Color: "blue"},
}

// Badge returns the display presentation for a status. Unknown or empty
// values fall back to the pending presentation.
func (s RegistrationStatus) Badge() Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return statusBadges[StatusPending]
}

// StatusAction is one transition button on the admin review page.
type StatusAction struct {
	Target RegistrationStatus
	Label  string
}

// NextActions lists the transitions offered for the current status. Every
// state can be re-entered except the current one; finalist is only reachable
// from approved.
func (s RegistrationStatus) NextActions() []StatusAction {
	var out []StatusAction
	if s != StatusApproved {
		out = append(out, StatusAction{StatusApproved, "승인"})
	}
	if s == StatusApproved {
		out = append(out, StatusAction{StatusFinalist, "본선 진출"})
	}
	if s != StatusRejected {
		out = append(out, StatusAction{StatusRejected, "거절"})
	}
	if s != StatusPending {
		out = append(out, StatusAction{StatusPending, "검토중으로 변경"})
	}
	return out
}
