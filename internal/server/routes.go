package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"feedbackhub/internal/auth"
	"feedbackhub/internal/config"
	"feedbackhub/internal/email"
	"feedbackhub/internal/handlers"
	"feedbackhub/internal/handlers/api"
	"feedbackhub/internal/middleware"
	"feedbackhub/internal/pipeline"
	"feedbackhub/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(recordStore *store.Store, profiles *store.ProfileHolder, options *config.YAMLConfig) {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Sessions)

	// Collaborators
	authenticator := auth.NewStaticAuthenticator(s.Cfg.StaffUsername, s.Cfg.StaffPassword)
	notifier := email.NewService(s.Cfg)
	submissions := pipeline.New(recordStore, profiles)

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(s.Cfg, recordStore, profiles)
	setupHandler := handlers.NewSetupHandler(s.Cfg, options, profiles)
	feedbackHandler := handlers.NewFeedbackHandler(s.Cfg, submissions, profiles, notifier)
	authHandler := handlers.NewAuthHandler(s.Cfg, authenticator, authMiddleware)
	dashboardHandler := handlers.NewDashboardHandler(s.Cfg, recordStore)
	qrHandler := handlers.NewQRHandler(s.Cfg)
	probeHandler := handlers.NewProbeHandler(recordStore)
	apiFeedbackHandler := api.NewFeedbackHandler(recordStore, submissions, notifier)

	// Public pages
	s.App.Get("/", authMiddleware.OptionalStaff, homeHandler.Index)
	s.App.Get("/setup", setupHandler.Show)
	s.App.Post("/setup", setupHandler.Create)
	s.App.Get("/feedback", feedbackHandler.Show)
	s.App.Post("/feedback", feedbackHandler.Submit)
	s.App.Get("/qr.png", qrHandler.Image)

	// Staff login/logout
	s.App.Get("/login", authHandler.LoginPage)
	s.App.Post("/login", authHandler.Login)
	s.App.Post("/logout", authHandler.Logout)

	// Staff dashboard
	s.App.Get("/dashboard", authMiddleware.RequireStaff, dashboardHandler.Show)

	// JSON API - reads require staff, submissions are public
	s.App.Post("/api/feedback", apiFeedbackHandler.Create)
	s.App.Get("/api/feedback", authMiddleware.RequireStaff, apiFeedbackHandler.List)
	s.App.Get("/api/feedback/:id", authMiddleware.RequireStaff, apiFeedbackHandler.Get)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
