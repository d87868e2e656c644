package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	svc "github.com/failcon/website/internal/services"
)

// GET /auth/login
func LoginForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessionUserID(r) != 0 {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		render(w, t, "auth/login.tmpl", map[string]any{
			"Title":    "로그인",
			"Redirect": r.URL.Query().Get("redirect"),
			"Flash":    MakeFlash(r, "", ""),
		})
	}
}

// POST /auth/login
func LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	redirect := r.FormValue("redirect")

	p, err := svc.Authenticate(r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		dest := "/auth/login?error=bad_login"
		if redirect != "" {
			dest += "&redirect=" + url.QueryEscape(redirect)
		}
		http.Redirect(w, r, dest, http.StatusSeeOther)
		return
	}

	token, err := svc.IssueSession(p.ID)
	if err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, token)

	// Only follow same-site return paths.
	if redirect == "" || !strings.HasPrefix(redirect, "/") {
		redirect = "/"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// GET /auth/sign-up
func SignUpForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessionUserID(r) != 0 {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		render(w, t, "auth/sign_up.tmpl", map[string]any{
			"Title": "회원가입",
			"Flash": MakeFlash(r, "", ""),
		})
	}
}

// POST /auth/sign-up
func SignUpSubmit(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	fullName := strings.TrimSpace(r.FormValue("full_name"))

	if email == "" || password == "" || fullName == "" {
		http.Redirect(w, r, "/auth/sign-up?error=missing", http.StatusSeeOther)
		return
	}
	if len(password) < 8 {
		http.Redirect(w, r, "/auth/sign-up?error=weak_password", http.StatusSeeOther)
		return
	}

	if _, err := svc.SignUp(email, password, fullName); err != nil {
		key := "db"
		switch {
		case errors.Is(err, svc.ErrEmailTaken):
			key = "email_in_use"
		case errors.Is(err, svc.ErrBadEmail):
			key = "invalid_email"
		}
		http.Redirect(w, r, "/auth/sign-up?error="+key, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/auth/login?ok=signed_up", http.StatusSeeOther)
}

// GET /auth/logout
func Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/?ok=logged_out", http.StatusSeeOther)
}
