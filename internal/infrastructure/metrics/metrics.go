package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "employeedirectory",
			Name:      "general_counters",
			Help:      "Request and employee lifecycle counters, labeled by result.",
		},
		[]string{"result"})
}
