package prediction

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK           = "ok"
	resultInvalidInput = "invalid_input"
	resultFetchError   = "fetch_error"
	resultStateError   = "state_error"

	sourceSignal   = "signal"
	sourceFeedback = "feedback"
)

var (
	PredictionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_requests_total",
			Help: "Count of prediction requests by result.",
		},
		[]string{"result"},
	)

	PredictionCategoryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_category_total",
			Help: "Count of category recommendations by category and decision source.",
		},
		[]string{"category", "source"},
	)

	FeedbackEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_feedback_events_total",
			Help: "Count of win/loss feedback events.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(PredictionRequestsTotal, PredictionCategoryTotal, FeedbackEventsTotal)
}
