package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ledgerline/quoting/internal/crm"
	"github.com/ledgerline/quoting/internal/metrics"
	"github.com/ledgerline/quoting/internal/pdf"
	"github.com/ledgerline/quoting/internal/pricing"
	"github.com/ledgerline/quoting/internal/quotes"
)

// maxRequestBody bounds JSON request payloads.
const maxRequestBody = 1 << 20

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, valid, err := s.auth.validateCredentials(req.Email, req.Password)
	if err != nil {
		s.logger.Error("credential check failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "authentication error")
		return
	}
	if !valid {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	s.auth.setSessionCookie(w, session{Email: req.Email, Role: role})
	respondJSON(w, http.StatusOK, map[string]string{"email": req.Email, "role": role})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleCalculate runs the pricing engine on the posted input without
// persisting anything. The quote builder calls this on every form change.
func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var input pricing.QuoteInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	overrides, err := s.loadOverrides()
	if err != nil {
		s.logger.Error("load pricing overrides", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load pricing configuration")
		return
	}

	fees := pricing.Calculate(input, overrides)
	metrics.CalculationsTotal.Inc()

	respondJSON(w, http.StatusOK, pricing.ForDisplay(fees))
}

type quoteRequest struct {
	ClientName string             `json:"clientName"`
	Company    string             `json:"company"`
	Notes      string             `json:"notes"`
	Status     string             `json:"status"`
	Input      pricing.QuoteInput `json:"input"`
}

func (s *server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ClientName) == "" {
		respondError(w, http.StatusBadRequest, "clientName is required")
		return
	}

	overrides, err := s.loadOverrides()
	if err != nil {
		s.logger.Error("load pricing overrides", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load pricing configuration")
		return
	}

	q := quotes.Quote{
		ClientName: strings.TrimSpace(req.ClientName),
		Company:    strings.TrimSpace(req.Company),
		Notes:      req.Notes,
		Status:     req.Status,
		Input:      req.Input,
	}
	q.SetFees(pricing.Calculate(req.Input, overrides))

	if err := s.store.Create(&q); err != nil {
		s.logger.Error("create quote", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save quote")
		return
	}

	metrics.QuotesSaved.WithLabelValues("create").Inc()
	respondJSON(w, http.StatusCreated, q)
}

func (s *server) handleUpdateQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := s.store.Get(id)
	if err != nil {
		s.respondStoreError(w, err, "load quote")
		return
	}
	if existing.Archived {
		respondError(w, http.StatusConflict, "quote is archived")
		return
	}

	var req quoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ClientName) == "" {
		respondError(w, http.StatusBadRequest, "clientName is required")
		return
	}

	overrides, err := s.loadOverrides()
	if err != nil {
		s.logger.Error("load pricing overrides", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load pricing configuration")
		return
	}

	existing.ClientName = strings.TrimSpace(req.ClientName)
	existing.Company = strings.TrimSpace(req.Company)
	existing.Notes = req.Notes
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.Input = req.Input
	existing.SetFees(pricing.Calculate(req.Input, overrides))

	if err := s.store.Update(&existing); err != nil {
		s.respondStoreError(w, err, "update quote")
		return
	}

	metrics.QuotesSaved.WithLabelValues("update").Inc()
	respondJSON(w, http.StatusOK, existing)
}

func (s *server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	q, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondStoreError(w, err, "load quote")
		return
	}

	// Fees are re-derived from the stored input so a pricing change shows up
	// on existing quotes. The saved snapshot keeps what the client was shown.
	overrides, err := s.loadOverrides()
	if err != nil {
		s.logger.Error("load pricing overrides", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load pricing configuration")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"quote":   q,
		"current": pricing.ForDisplay(pricing.Calculate(q.Input, overrides)),
	})
}

func (s *server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	summaries, err := s.store.List(query)
	if err != nil {
		s.logger.Error("list quotes", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list quotes")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"quotes": summaries})
}

func (s *server) handleArchiveQuote(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Archive(chi.URLParam(r, "id")); err != nil {
		s.respondStoreError(w, err, "archive quote")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleQuotePDF(w http.ResponseWriter, r *http.Request) {
	q, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondStoreError(w, err, "load quote")
		return
	}

	document, err := pdf.Generate(q, pricing.ForDisplay(q.Fees))
	if err != nil {
		s.logger.Error("generate quote pdf", zap.String("quote_id", q.ID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to generate pdf")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "quote-"+q.ID+".pdf"))
	_, _ = w.Write(document)
}

func (s *server) handleSyncQuote(w http.ResponseWriter, r *http.Request) {
	if !s.crm.Enabled() {
		respondError(w, http.StatusServiceUnavailable, "crm sync is not configured")
		return
	}

	q, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondStoreError(w, err, "load quote")
		return
	}

	deal, items := crm.BuildDeal(q, pricing.ForDisplay(q.Fees))
	dealID, err := s.crm.SyncQuote(r.Context(), deal, items)
	if err != nil {
		metrics.CRMSyncs.WithLabelValues("error").Inc()
		s.logger.Error("sync quote to crm", zap.String("quote_id", q.ID), zap.Error(err))
		respondError(w, http.StatusBadGateway, "crm sync failed")
		return
	}

	q.HubSpotDealID = dealID
	if err := s.store.Update(&q); err != nil {
		s.logger.Error("record crm deal id", zap.String("quote_id", q.ID), zap.Error(err))
	}

	metrics.CRMSyncs.WithLabelValues("ok").Inc()
	respondJSON(w, http.StatusOK, map[string]string{"hubspotDealId": dealID})
}

func (s *server) respondStoreError(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, quotes.ErrNotFound) {
		respondError(w, http.StatusNotFound, "quote not found")
		return
	}
	s.logger.Error(action, zap.Error(err))
	respondError(w, http.StatusInternalServerError, "failed to "+action)
}
