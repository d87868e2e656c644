package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/models"
	svc "github.com/failcon/website/internal/services"
)

const sessionCookieName = "failcon_session"

type ctxKey int

const userIDKey ctxKey = 1

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// sessionUserID returns the profile id carried by the session cookie, or 0.
func sessionUserID(r *http.Request) uint {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return 0
	}
	id, err := svc.ParseSession(c.Value)
	if err != nil {
		return 0
	}
	return id
}

func userIDFrom(r *http.Request) uint {
	if v, ok := r.Context().Value(userIDKey).(uint); ok {
		return v
	}
	return sessionUserID(r)
}

// currentProfile loads the signed-in profile, or nil for anonymous visitors.
func currentProfile(r *http.Request) *models.Profile {
	id := userIDFrom(r)
	if id == 0 {
		return nil
	}
	var p models.Profile
	if err := db.Conn().First(&p, id).Error; err != nil {
		return nil
	}
	return &p
}

func loginRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/auth/login?redirect="+r.URL.RequestURI(), http.StatusSeeOther)
}

// RequireUser gates participant pages: no session → login with a return path.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionUserID(r)
		if id == 0 {
			loginRedirect(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
	})
}

// RequireAdmin gates the back office. The role is resolved from the profiles
// table on every request; anything but an explicit admin role goes back to
// the public site.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := sessionUserID(r)
		if id == 0 {
			loginRedirect(w, r)
			return
		}
		if svc.ResolveRole(id) != models.RoleAdmin {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
	})
}
