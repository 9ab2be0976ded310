package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ledgerline/quoting/internal/pricing"
)

// loadOverrides reads the pricing_config singleton. A missing row means no
// overrides, so the compiled-in defaults apply.
func (s *server) loadOverrides() (*pricing.Overrides, error) {
	var raw string
	err := s.db.QueryRow(`SELECT overrides_json FROM pricing_config WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query pricing_config: %w", err)
	}

	var overrides pricing.Overrides
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		return nil, fmt.Errorf("decode pricing overrides: %w", err)
	}
	return &overrides, nil
}

func (s *server) saveOverrides(o *pricing.Overrides) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode pricing overrides: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO pricing_config (id, overrides_json, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET overrides_json = excluded.overrides_json, updated_at = CURRENT_TIMESTAMP
	`, string(raw))
	if err != nil {
		return fmt.Errorf("save pricing_config: %w", err)
	}
	return nil
}

type pricingConfigResponse struct {
	Overrides *pricing.Overrides `json:"overrides"`
	Effective pricing.Config     `json:"effective"`
}

// handleGetPricingConfig returns the stored overrides alongside the effective
// configuration the engine actually uses.
func (s *server) handleGetPricingConfig(w http.ResponseWriter, r *http.Request) {
	overrides, err := s.loadOverrides()
	if err != nil {
		s.logger.Error("load pricing overrides", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load pricing configuration")
		return
	}

	respondJSON(w, http.StatusOK, pricingConfigResponse{
		Overrides: overrides,
		Effective: pricing.ResolveConfig(overrides),
	})
}

func (s *server) handleUpdatePricingConfig(w http.ResponseWriter, r *http.Request) {
	var overrides pricing.Overrides
	if err := decodeJSON(w, r, &overrides); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if overrides.RoundingStep != nil && *overrides.RoundingStep <= 0 {
		respondError(w, http.StatusBadRequest, "roundingStep must be positive")
		return
	}
	if overrides.DiscountPct != nil && (*overrides.DiscountPct < 0 || *overrides.DiscountPct > 1) {
		respondError(w, http.StatusBadRequest, "discountPct must be between 0 and 1")
		return
	}

	if err := s.saveOverrides(&overrides); err != nil {
		s.logger.Error("save pricing overrides", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save pricing configuration")
		return
	}

	respondJSON(w, http.StatusOK, pricingConfigResponse{
		Overrides: &overrides,
		Effective: pricing.ResolveConfig(&overrides),
	})
}
