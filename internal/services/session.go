package services

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrBadSession = errors.New("invalid session token")

// Default secret if env not set
func sessionSecret() []byte {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("failcon-dev-secret") // change in production: export SESSION_SECRET=...
}

// IssueSession signs a session token carrying the profile id.
func IssueSession(profileID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": "failcon",
		"sub": strconv.FormatUint(uint64(profileID), 10),
		"iat": now.Unix(),
		"exp": now.Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// ParseSession returns the profile id carried by a session token. Expired
// or tampered tokens return ErrBadSession.
func ParseSession(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSession
		}
		return sessionSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrBadSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrBadSession
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, ErrBadSession
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrBadSession
	}
	return uint(id), nil
}
