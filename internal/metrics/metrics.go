package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CalculationsTotal counts pricing-engine runs triggered over the API.
	CalculationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quoting_calculations_total",
			Help: "Number of pricing calculations performed",
		},
	)

	// QuotesSaved counts quote create/update operations.
	QuotesSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quoting_quotes_saved_total",
			Help: "Number of quotes created or updated",
		},
		[]string{"operation"},
	)

	// CRMSyncs counts HubSpot sync attempts by outcome.
	CRMSyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quoting_crm_syncs_total",
			Help: "Number of CRM sync attempts",
		},
		[]string{"status"},
	)
)

// Handler exposes the default registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
