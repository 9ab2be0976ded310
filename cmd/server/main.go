package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ledgerline/quoting/internal/config"
	"github.com/ledgerline/quoting/internal/crm"
	"github.com/ledgerline/quoting/internal/db"
	"github.com/ledgerline/quoting/internal/logging"
	"github.com/ledgerline/quoting/internal/metrics"
	"github.com/ledgerline/quoting/internal/migrations"
	"github.com/ledgerline/quoting/internal/quotes"
	"github.com/ledgerline/quoting/internal/seed"
)

type server struct {
	logger *zap.Logger
	db     *sql.DB
	auth   *authService
	store  *quotes.Store
	crm    *crm.Client
}

func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database); err != nil {
			logger.Fatal("failed to run database migrations", zap.Error(err))
		}
	}

	stats, err := seed.Run(database, seed.Config{AdminEmail: cfg.AdminEmail, AdminPassword: cfg.AdminPassword})
	if err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}
	if stats.Inserts > 0 {
		logger.Info("seeded database", zap.Int("inserts", stats.Inserts))
	}

	srv := &server{
		logger: logger,
		db:     database,
		auth:   newAuthService(database, cfg.SessionSecret),
		store:  quotes.NewStore(database),
		crm:    crm.NewClient(cfg.HubSpotBaseURL, cfg.HubSpotToken),
	}

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Post("/api/login", s.handleLogin)
	r.Post("/api/logout", s.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)

		r.Post("/api/pricing/calculate", s.handleCalculate)

		r.Post("/api/quotes", s.handleCreateQuote)
		r.Get("/api/quotes", s.handleListQuotes)
		r.Get("/api/quotes/{id}", s.handleGetQuote)
		r.Put("/api/quotes/{id}", s.handleUpdateQuote)
		r.Post("/api/quotes/{id}/archive", s.handleArchiveQuote)
		r.Get("/api/quotes/{id}/pdf", s.handleQuotePDF)
		r.Post("/api/quotes/{id}/sync", s.handleSyncQuote)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession, s.requireAdmin)

		r.Get("/api/admin/pricing-config", s.handleGetPricingConfig)
		r.Put("/api/admin/pricing-config", s.handleUpdatePricingConfig)
	})

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
