// Package router sets up all HTTP routes and middleware chains for the
// PromptForge API. Routes are organized into public, pending-2FA, and
// fully authenticated groups with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"promptforge/internal/handlers"
	"promptforge/internal/middleware"
	"promptforge/internal/session"
)

// Generation is the most expensive endpoint, so it gets its own limiter.
const (
	generateLimit  = 10
	generateWindow = time.Minute
)

// Handlers bundles the handler groups the router wires up.
type Handlers struct {
	Auth      *handlers.Auth
	Generate  *handlers.Generate
	Bookmarks *handlers.Bookmarks
	History   *handlers.History
	Profile   *handlers.Profile
	Settings  *handlers.Settings
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The returned RateLimiter must be stopped on
// shutdown.
func New(sessionStore *session.Store, h Handlers) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	generateLimiter := middleware.NewRateLimiter(generateLimit, generateWindow)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Public endpoints. Generation works without an account; the
		// result is simply not recorded.
		r.Get("/catalogs", handlers.Catalogs)
		r.With(generateLimiter.Middleware).Post("/generate", h.Generate.Handle)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)

			// Verification admits only sessions awaiting their challenge.
			r.With(middleware.RequirePending2FA).Post("/2fa/verify", h.Auth.TwoFAVerify)

			// Enrollment requires a fully authenticated session.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/me", h.Auth.Me)
				r.Post("/2fa/setup", h.Auth.TwoFASetup)
				r.Post("/2fa/activate", h.Auth.TwoFAActivate)
				r.Post("/2fa/disable", h.Auth.TwoFADisable)
			})
		})

		// Everything below requires a completed session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Route("/bookmarks", func(r chi.Router) {
				r.Get("/", h.Bookmarks.List)
				r.Post("/", h.Bookmarks.Create)
				r.Post("/toggle", h.Bookmarks.Toggle)
				r.Delete("/{id}", h.Bookmarks.Delete)
			})

			r.Route("/history", func(r chi.Router) {
				r.Get("/", h.History.List)
				r.Delete("/", h.History.Clear)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.Profile.Get)
				r.Put("/", h.Profile.Update)
				r.Post("/password", h.Profile.ChangePassword)
				r.Post("/delete", h.Profile.Delete)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)
				r.Put("/", h.Settings.Update)
			})
		})
	})

	return r, generateLimiter
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
