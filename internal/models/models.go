package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile is the local identity record. Role is the sole authorization
// signal for the back office.
type Profile struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	FullName     string
	Role         Role `gorm:"default:user"`
}

func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Competition status: draft | published | ongoing | completed | archived.
// Early rows carried a literal "open"; it reads as published everywhere.
type Competition struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Edition     int    `gorm:"uniqueIndex"`
	Slug        string `gorm:"uniqueIndex"`
	Title       string
	Subtitle    string
	Description string
	Status      string

	RegistrationDeadline *time.Time
	EndDate              *time.Time
	Location             string
	PrizePool            string
	VideoURL             string
	PosterImage          string

	Rules []CompetitionRule
}

// CompetitionRule is one rulebook entry shown on the detail page, grouped
// by category.
type CompetitionRule struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	CompetitionID uint
	Category      string
	Title         string
	Content       string
	Icon          string
	OrderIndex    int
}

type Track string

const (
	TrackYouth   Track = "youth"
	TrackGeneral Track = "general"
)

func (t Track) Valid() bool {
	return t == TrackYouth || t == TrackGeneral
}

func (t Track) Label() string {
	if t == TrackYouth {
		return "청소년 트랙"
	}
	return "일반 트랙"
}

// Registration is one participant entry per (user, competition). Uniqueness
// is enforced by idx_reg_user_competition, created in db.Init.
type Registration struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	CompetitionID uint
	UserID        uint
	Competition   Competition
	User          Profile `gorm:"foreignKey:UserID"`

	TeamName  string
	Track     Track
	Notes     string
	Status    RegistrationStatus
	Reference string `gorm:"uniqueIndex"` // e.g. REG-4F2A9C01, encoded in the QR pass
}

type Announcement struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title       string
	Excerpt     string
	Content     string
	IsPublished bool
	IsFeatured  bool
	AuthorID    uint
	Author      Profile `gorm:"foreignKey:AuthorID"`
	PublishedAt *time.Time
}

type FAQ struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Question    string
	Answer      string
	Category    string
	SortOrder   int
	IsPublished bool
}

// CompetitionStatusLabel maps catalog statuses to public display text.
func CompetitionStatusLabel(status string) string {
	switch status {
	case "published", "open":
		return "예정"
	case "ongoing":
		return "진행중"
	case "completed":
		return "완료"
	case "archived":
		return "종료"
	case "draft":
		return "준비중"
	default:
		return status
	}
}
