package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	ErrBadEmail   = errors.New("invalid email address")
	ErrBadLogin   = errors.New("wrong email or password")
)

// SignUp creates a profile with the user role. Email uniqueness is enforced
// by the index; a duplicate surfaces as ErrEmailTaken.
func SignUp(email, password, fullName string) (*models.Profile, error) {
	email, ok := NormEmail(email)
	if !ok || email == "" {
		return nil, ErrBadEmail
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	p := models.Profile{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
		Role:         models.RoleUser,
	}
	if err := db.Conn().Create(&p).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &p, nil
}

// Authenticate checks the password for an email and returns the profile.
func Authenticate(email, password string) (*models.Profile, error) {
	email, _ = NormEmail(email)
	var p models.Profile
	if err := db.Conn().Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadLogin
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadLogin
	}
	return &p, nil
}

// ResolveRole looks up the profile role for an authenticated id, once per
// call with no caching. Any lookup failure resolves to the lowest privilege
// so admin pages redirect instead of erroring.
func ResolveRole(userID uint) models.Role {
	if userID == 0 {
		return models.RoleUser
	}
	var p models.Profile
	if err := db.Conn().Select("role").First(&p, userID).Error; err != nil {
		return models.RoleUser
	}
	if p.Role == models.RoleAdmin {
		return models.RoleAdmin
	}
	return models.RoleUser
}
