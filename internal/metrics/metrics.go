package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PaymentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scriptstore",
			Name:      "payments_processed_total",
			Help:      "Deposit claims moved to a terminal state, by outcome.",
		},
		[]string{"status"},
	)

	PurchasesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "scriptstore",
			Name:      "purchases_completed_total",
			Help:      "Successful script purchases.",
		},
	)

	LicenseVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scriptstore",
			Name:      "license_verifications_total",
			Help:      "Remote license verification calls, by outcome.",
		},
		[]string{"outcome"},
	)

	WebhookRejects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scriptstore",
			Name:      "webhook_rejects_total",
			Help:      "Webhook deliveries rejected before processing, by reason.",
		},
		[]string{"reason"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
