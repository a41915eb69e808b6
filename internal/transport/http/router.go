package http

import (
	"net/http"

	"github.com/go-auth-api/internal/application/auth"
	"github.com/go-auth-api/internal/application/notifier"
	"github.com/go-auth-api/internal/config"
	jwtinfra "github.com/go-auth-api/internal/infrastructure/jwt"
	"github.com/go-auth-api/internal/pkg/password"
	"github.com/go-auth-api/internal/transport/http/handler"
	appmiddleware "github.com/go-auth-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	AccountRepo AccountRepository
	Notifier    notifier.Notifier
	JWTProvider *jwtinfra.Provider
	Hasher      *password.Hasher
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		// The session travels in a cookie, so credentialed requests must be allowed.
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authSvc := auth.NewService(auth.ServiceDeps{
		AccountRepo: deps.AccountRepo,
		Notifier:    deps.Notifier,
		Signer:      deps.JWTProvider,
		Hasher:      deps.Hasher,
		ClientURL:   cfg.ClientURL,
	})

	authH := handler.NewAuthHandler(authSvc, cfg.IsProduction())
	healthH := handler.NewHealthHandler()

	// 5 requests/second, burst of 10 — applied to the credential-sensitive
	// public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	r.Get("/health-check", healthH.Ping)

	r.With(sensitiveRL.Limit).Post("/signup", authH.Signup)
	r.With(sensitiveRL.Limit).Post("/login", authH.Login)
	r.Post("/logout", authH.Logout)
	r.With(sensitiveRL.Limit).Post("/verify-email", authH.VerifyEmail)
	r.With(sensitiveRL.Limit).Post("/forgot-password", authH.ForgotPassword)
	r.With(sensitiveRL.Limit).Post("/reset-password/{token}", authH.ResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Auth(deps.JWTProvider))
		r.Get("/check-auth", authH.CheckAuth)
	})

	return r
}
