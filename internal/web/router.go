package web

import (
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/failcon/website/internal/handlers"
)

func Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	tmpl := mustParseTemplates()

	// Public pages
	r.Get("/", handlers.Home(tmpl))
	r.Get("/healthz", handlers.Health)
	r.Get("/competitions", handlers.CompetitionsList(tmpl))
	r.Get("/competitions/{slug}", handlers.CompetitionDetail(tmpl))
	r.Get("/announcements", handlers.AnnouncementsList(tmpl))
	r.Get("/announcements/{id}", handlers.AnnouncementDetail(tmpl))
	r.Get("/faq", handlers.FAQPage(tmpl))

	// Auth
	r.Get("/auth/login", handlers.LoginForm(tmpl))
	r.Post("/auth/login", handlers.LoginSubmit)
	r.Get("/auth/sign-up", handlers.SignUpForm(tmpl))
	r.Post("/auth/sign-up", handlers.SignUpSubmit)
	r.Get("/auth/logout", handlers.Logout)

	// Participant pages
	r.Group(func(pr chi.Router) {
		pr.Use(handlers.RequireUser)
		pr.Get("/register", handlers.RegisterForm(tmpl))
		pr.Post("/register", handlers.RegisterSubmit)
		pr.Get("/my-registrations", handlers.MyRegistrations(tmpl))
		pr.Get("/my-registrations/{reference}/qr.png", handlers.MyRegistrationQR)
	})

	// Back office
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(handlers.RequireAdmin)

		ar.Get("/", handlers.AdminDashboard(tmpl))

		ar.Get("/announcements", handlers.AdminAnnouncements(tmpl))
		ar.Get("/announcements/new", handlers.AdminAnnouncementNewForm(tmpl))
		ar.Post("/announcements", handlers.AdminAnnouncementCreate)
		ar.Get("/announcements/{id}/edit", handlers.AdminAnnouncementEditForm(tmpl))
		ar.Post("/announcements/{id}", handlers.AdminAnnouncementUpdate)

		ar.Get("/faq", handlers.AdminFAQs(tmpl))
		ar.Get("/faq/new", handlers.AdminFAQNewForm(tmpl))
		ar.Post("/faq", handlers.AdminFAQCreate)
		ar.Get("/faq/{id}/edit", handlers.AdminFAQEditForm(tmpl))
		ar.Post("/faq/{id}", handlers.AdminFAQUpdate)

		ar.Get("/registrations", handlers.AdminRegistrations(tmpl))
		ar.Post("/registrations/{id}/status", handlers.AdminRegSetStatus)
	})

	r.NotFound(handlers.NotFound(tmpl))

	return r
}

func mustParseTemplates() *template.Template {
	funcs := template.FuncMap{
		"year": func() string { return time.Now().Format("2006") },
	}

	base := handlers.TemplatesDir()
	p := template.New("").Funcs(funcs)
	p = template.Must(p.ParseGlob(filepath.Join(base, "layouts", "*.tmpl")))
	p = template.Must(p.ParseGlob(filepath.Join(base, "partials", "*.tmpl")))
	return p
}
