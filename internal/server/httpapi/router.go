package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/meetscribe/meetscribe/internal/logging"
)

// NewRouter assembles the full route tree. Everything under /api/v1 except
// registration, login, refresh and logout requires a valid access token;
// role gates are layered per route group.
func NewRouter(
	logger logging.Logger,
	users userService,
	transcriptions transcriptionService,
	translations translationService,
	analyses analysisService,
) http.Handler {
	authHandler := NewAuthHandler(users)
	adminHandler := NewAdminHandler(users)
	transcriptionHandler := NewTranscriptionHandler(transcriptions, translations)
	translationHandler := NewTranslationHandler(translations, analyses)
	analysisHandler := NewAnalysisHandler(analyses)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/greet", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from MeetScribe!"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(Authenticator(users))
				r.Use(RequireActive)
				r.Get("/users/me", authHandler.Me)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(Authenticator(users))
			r.Use(RequireActive)
			r.Use(RequireSuperuser)
			r.Get("/users", adminHandler.ListUsers)
			r.Patch("/users/{id}/status", adminHandler.UpdateUserStatus)
		})

		r.Group(func(r chi.Router) {
			r.Use(Authenticator(users))
			r.Use(RequireActive)

			r.Route("/audios", func(r chi.Router) {
				r.Post("/transcribe", transcriptionHandler.Transcribe)
				r.Get("/transcriptions", transcriptionHandler.List)
				r.Get("/transcriptions/{id}", transcriptionHandler.Get)
				r.Get("/transcriptions/{id}/translations", transcriptionHandler.ListTranslations)
				r.Post("/analyses", analysisHandler.Create)
				r.Get("/analyses", analysisHandler.List)
				r.Get("/analyses/{id}", analysisHandler.Get)
			})

			r.Route("/translations", func(r chi.Router) {
				r.Post("/", translationHandler.Create)
				r.Get("/", translationHandler.List)
				r.Get("/{id}", translationHandler.Get)
				r.Get("/{id}/analyses", translationHandler.ListAnalyses)
			})
		})
	})

	return r
}
