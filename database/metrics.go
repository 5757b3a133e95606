package database

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StatementsTotal counts repository statements by entity and operation.
	StatementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_statements_total",
		Help: "Number of SQL statements issued by the repositories.",
	}, []string{"entity", "operation"})

	// StatementFailures counts repository statements that returned an error.
	StatementFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_statement_failures_total",
		Help: "Number of repository statements that failed.",
	}, []string{"entity", "operation"})
)

// ObserveStatement records one statement outcome.
func ObserveStatement(entity, operation string, err error) {
	StatementsTotal.WithLabelValues(entity, operation).Inc()
	if err != nil {
		StatementFailures.WithLabelValues(entity, operation).Inc()
	}
}
