package quotes

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ledgerline/quoting/internal/pricing"
)

// ErrNotFound is returned when a quote id does not exist or is archived away.
var ErrNotFound = errors.New("quote not found")

// Quote is a persisted quote: the raw form input plus a snapshot of the
// computed fees. The snapshot columns are a cache for listing and CRM export;
// the engine output is always re-derived from Input on load.
type Quote struct {
	ID            string               `json:"id"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	ClientName    string               `json:"clientName"`
	Company       string               `json:"company,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	Status        string               `json:"status"`
	Archived      bool                 `json:"archived"`
	Input         pricing.QuoteInput   `json:"input"`
	MonthlyFee    string               `json:"monthlyFee"`
	SetupFee      string               `json:"setupFee"`
	Fees          pricing.CombinedFees `json:"fees"`
	HubSpotDealID string               `json:"hubspotDealId,omitempty"`
}

// Summary is the list-view projection of a quote.
type Summary struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	ClientName string    `json:"clientName"`
	Company    string    `json:"company,omitempty"`
	Status     string    `json:"status"`
	MonthlyFee string    `json:"monthlyFee"`
	SetupFee   string    `json:"setupFee"`
}

// Store persists quotes in SQLite.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SetFees records the computed result on the quote, serializing the numeric
// totals into the string snapshot columns.
func (q *Quote) SetFees(fees pricing.CombinedFees) {
	q.Fees = fees
	q.MonthlyFee = strconv.Itoa(fees.Combined.MonthlyFee)
	q.SetupFee = strconv.Itoa(fees.Combined.SetupFee)
}

// Create inserts a new quote, assigning its id and timestamps.
func (s *Store) Create(q *Quote) error {
	q.ID = ulid.Make().String()
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now
	if q.Status == "" {
		q.Status = "draft"
	}

	inputJSON, feesJSON, err := marshalQuote(q)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO quotes (id, created_at, updated_at, client_name, company, notes, status, archived, input_json, monthly_fee, setup_fee, fees_json, hubspot_deal_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, FALSE, ?, ?, ?, ?, ?)
	`, q.ID, q.CreatedAt, q.UpdatedAt, q.ClientName, q.Company, q.Notes, q.Status, inputJSON, q.MonthlyFee, q.SetupFee, feesJSON, q.HubSpotDealID)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}

	return nil
}

// Update rewrites a quote's editable fields and fee snapshot.
func (s *Store) Update(q *Quote) error {
	q.UpdatedAt = time.Now().UTC()

	inputJSON, feesJSON, err := marshalQuote(q)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(`
		UPDATE quotes
		SET
			updated_at = ?,
			client_name = ?,
			company = ?,
			notes = ?,
			status = ?,
			input_json = ?,
			monthly_fee = ?,
			setup_fee = ?,
			fees_json = ?,
			hubspot_deal_id = ?
		WHERE id = ? AND archived = FALSE
	`, q.UpdatedAt, q.ClientName, q.Company, q.Notes, q.Status, inputJSON, q.MonthlyFee, q.SetupFee, feesJSON, q.HubSpotDealID, q.ID)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Get loads one quote by id, archived or not.
func (s *Store) Get(id string) (Quote, error) {
	var (
		q         Quote
		inputJSON string
		feesJSON  string
	)
	err := s.db.QueryRow(`
		SELECT id, created_at, updated_at, client_name, COALESCE(company, ''), COALESCE(notes, ''), status, archived, input_json, monthly_fee, setup_fee, fees_json, COALESCE(hubspot_deal_id, '')
		FROM quotes
		WHERE id = ?
	`, id).Scan(
		&q.ID, &q.CreatedAt, &q.UpdatedAt, &q.ClientName, &q.Company, &q.Notes,
		&q.Status, &q.Archived, &inputJSON, &q.MonthlyFee, &q.SetupFee, &feesJSON, &q.HubSpotDealID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Quote{}, ErrNotFound
	}
	if err != nil {
		return Quote{}, fmt.Errorf("query quote: %w", err)
	}

	if err := json.Unmarshal([]byte(inputJSON), &q.Input); err != nil {
		return Quote{}, fmt.Errorf("decode quote input: %w", err)
	}
	if err := json.Unmarshal([]byte(feesJSON), &q.Fees); err != nil {
		return Quote{}, fmt.Errorf("decode quote fees: %w", err)
	}

	return q, nil
}

// Archive soft-deletes a quote; archived quotes disappear from List but stay
// loadable by id.
func (s *Store) Archive(id string) error {
	result, err := s.db.Exec(`
		UPDATE quotes
		SET archived = TRUE, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND archived = FALSE
	`, id)
	if err != nil {
		return fmt.Errorf("archive quote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive quote: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// List returns non-archived quotes newest-first, optionally filtered by a
// case-insensitive match on client, company or notes.
func (s *Store) List(query string) ([]Summary, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT id, created_at, client_name, COALESCE(company, ''), status, monthly_fee, setup_fee
		FROM quotes
		WHERE archived = FALSE
		  AND (? = '' OR client_name LIKE ? OR COALESCE(company, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search, search)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var item Summary
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.ClientName, &item.Company, &item.Status, &item.MonthlyFee, &item.SetupFee); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		summaries = append(summaries, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}

	return summaries, nil
}

func marshalQuote(q *Quote) (inputJSON, feesJSON string, err error) {
	input, err := json.Marshal(q.Input)
	if err != nil {
		return "", "", fmt.Errorf("encode quote input: %w", err)
	}
	fees, err := json.Marshal(q.Fees)
	if err != nil {
		return "", "", fmt.Errorf("encode quote fees: %w", err)
	}
	return string(input), string(fees), nil
}
