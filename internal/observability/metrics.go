package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics содержит счетчики и гистограммы Prometheus для ядра сервиса
type Metrics struct {
	IncidentsReported prometheus.Counter
	VotesCast         *prometheus.CounterVec // label: kind={upvote,downvote}
	ScoreRequests     prometheus.Counter
	SafetyScore       prometheus.Histogram
}

// NewMetrics создает и регистрирует метрики в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := &Metrics{
		IncidentsReported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "safety",
			Name:      "incidents_reported_total",
			Help:      "Total incident reports accepted.",
		}),
		VotesCast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "safety",
			Name:      "votes_cast_total",
			Help:      "Total incident votes applied, by kind.",
		}, []string{"kind"}),
		ScoreRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "safety",
			Name:      "score_requests_total",
			Help:      "Total safety score computations.",
		}),
		SafetyScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "safety",
			Name:      "score_value",
			Help:      "Distribution of computed safety scores.",
			Buckets:   []float64{0, 20, 40, 60, 80, 100},
		}),
	}

	prometheus.MustRegister(
		m.IncidentsReported,
		m.VotesCast,
		m.ScoreRequests,
		m.SafetyScore,
	)

	return m
}

// NewMetricsForTesting создает метрики без регистрации в общем реестре,
// чтобы параллельные тесты не падали на повторной регистрации
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		IncidentsReported: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "safety", Name: "incidents_reported_total"}),
		VotesCast:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "safety", Name: "votes_cast_total"}, []string{"kind"}),
		ScoreRequests:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "safety", Name: "score_requests_total"}),
		SafetyScore:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "safety", Name: "score_value"}),
	}
}
