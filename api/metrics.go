package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Payroll metrics, exposed on /metrics.

var payrollsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "nominer",
	Subsystem: "payroll",
	Name:      "computed_total",
	Help:      "Payroll computations by endpoint and outcome (ok, invalid).",
}, []string{"endpoint", "outcome"})

var settlementsComputed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "nominer",
	Subsystem: "payroll",
	Name:      "settlements_total",
	Help:      "Payroll computations that included a contract settlement.",
})

var documentsStored = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "nominer",
	Subsystem: "documents",
	Name:      "stored_total",
	Help:      "Generated payroll documents saved to the store.",
})

var netPayPesos = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "nominer",
	Subsystem: "payroll",
	Name:      "net_pay_pesos",
	Help:      "Distribution of computed net pay in whole pesos.",
	Buckets:   []float64{0, 1e6, 1.5e6, 2e6, 3e6, 5e6, 1e7, 2e7},
})
