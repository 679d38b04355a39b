// Package metrics exposes prometheus indicators for vault client calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vault_standard"

type Indicators struct {
	queryDurationSeconds *prometheus.HistogramVec
	queryTotal           *prometheus.CounterVec
	executeTotal         *prometheus.CounterVec
}

func NewIndicators(reg prometheus.Registerer) *Indicators {
	return &Indicators{
		queryDurationSeconds: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Duration of vault query <method> in seconds",
			},
			[]string{"method", "contract"},
		),
		queryTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "query_total",
				Help:      "Total number of vault query <method> requests",
			},
			[]string{"method", "contract"},
		),
		executeTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "execute_total",
				Help:      "Total number of vault execute <method> broadcasts",
			},
			[]string{"method", "contract"},
		),
	}
}

// ObserveQueryDuration observes the duration of a vault query
func (p *Indicators) ObserveQueryDuration(duration float64, method, contract string) {
	p.queryDurationSeconds.With(prometheus.Labels{
		"method":   method,
		"contract": contract,
	}).Observe(duration)
}

// AddQueryTotal adds a vault query to the total number of requests
func (p *Indicators) AddQueryTotal(method, contract string) {
	p.queryTotal.With(prometheus.Labels{
		"method":   method,
		"contract": contract,
	}).Inc()
}

// AddExecuteTotal adds a vault execute to the total number of broadcasts
func (p *Indicators) AddExecuteTotal(method, contract string) {
	p.executeTotal.With(prometheus.Labels{
		"method":   method,
		"contract": contract,
	}).Inc()
}
