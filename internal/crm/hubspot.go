package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ledgerline/quoting/internal/pricing"
	"github.com/ledgerline/quoting/internal/quotes"
)

// ErrDisabled is returned when no HubSpot token is configured; sync is an
// optional integration and the rest of the app works without it.
var ErrDisabled = errors.New("crm sync disabled: no token configured")

// Client is a thin HubSpot v3 client. It only knows how to export a quote as
// a deal with line items; it never reads pricing back.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether a token is configured.
func (c *Client) Enabled() bool {
	return c.token != ""
}

// Deal is the HubSpot deal payload derived from a quote.
type Deal struct {
	Name       string `json:"dealname"`
	Amount     string `json:"amount"`
	SetupFee   string `json:"setup_fee"`
	QuoteID    string `json:"quote_id"`
	MonthlyFee string `json:"monthly_fee"`
}

// LineItem is one HubSpot line item derived from an included service.
type LineItem struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	ProductID string `json:"hs_product_id,omitempty"`
	Recurring bool   `json:"-"`
}

// BuildDeal maps a quote's computed totals onto a deal plus one line item per
// included service. The CFO advisory line carries its product id so HubSpot
// links it to the catalog entry.
func BuildDeal(q quotes.Quote, totals pricing.DisplayTotals) (Deal, []LineItem) {
	name := q.ClientName
	if q.Company != "" {
		name = q.Company
	}

	deal := Deal{
		Name:       fmt.Sprintf("%s - Services Quote", name),
		Amount:     strconv.Itoa(totals.TotalMonthlyFee),
		SetupFee:   strconv.Itoa(totals.TotalSetupFee),
		MonthlyFee: strconv.Itoa(totals.TotalMonthlyFee),
		QuoteID:    q.ID,
	}

	lines := totals.Lines()
	items := make([]LineItem, 0, len(lines))
	for _, line := range lines {
		price := line.MonthlyFee
		recurring := true
		if price == 0 {
			price = line.SetupFee
			recurring = false
		}
		items = append(items, LineItem{
			Name:      line.Label,
			Price:     strconv.Itoa(price),
			ProductID: line.ProductID,
			Recurring: recurring,
		})
	}
	return deal, items
}

// SyncQuote creates the deal and its line items in HubSpot and returns the
// new deal id.
func (c *Client) SyncQuote(ctx context.Context, deal Deal, items []LineItem) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	dealID, err := c.createObject(ctx, "/crm/v3/objects/deals", map[string]any{
		"properties": deal,
	})
	if err != nil {
		return "", fmt.Errorf("create deal: %w", err)
	}

	for _, item := range items {
		_, err := c.createObject(ctx, "/crm/v3/objects/line_items", map[string]any{
			"properties": item,
			"associations": []map[string]any{
				{
					"to": map[string]string{"id": dealID},
					"types": []map[string]any{
						{"associationCategory": "HUBSPOT_DEFINED", "associationTypeId": 20},
					},
				},
			},
		})
		if err != nil {
			return dealID, fmt.Errorf("create line item %q: %w", item.Name, err)
		}
	}

	return dealID, nil
}

func (c *Client) createObject(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("post %s: unexpected status %d", path, resp.StatusCode)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return created.ID, nil
}
