package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agency_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agency_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agency_login_attempts_total",
		Help: "Login attempts by resolved pool (role) or failure",
	}, []string{"result", "role"})

	navigationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agency_navigation_decisions_total",
		Help: "Route guard decisions by role, checked module and outcome",
	}, []string{"role", "module", "outcome"})

	reportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agency_report_duration_seconds",
		Help:    "Duration of report generation",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})

	orphanTransactions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agency_orphan_transactions_seen_total",
		Help: "Transactions referencing a missing project skipped by the profit roll-up",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveLogin counts a login attempt. role is empty on failure.
func ObserveLogin(success bool, role string) {
	result := "failure"
	if success {
		result = "success"
	}
	loginAttempts.WithLabelValues(result, role).Inc()
}

// ObserveNavigation counts a route guard decision.
func ObserveNavigation(role, module string, allowed bool) {
	outcome := "allowed"
	if !allowed {
		outcome = "denied"
	}
	navigationDecisions.WithLabelValues(role, module, outcome).Inc()
}

// ObserveReport records how long a report took.
func ObserveReport(report string, duration time.Duration) {
	reportDuration.WithLabelValues(report).Observe(duration.Seconds())
}

// AddOrphanTransactions adds n to the orphan transaction counter.
func AddOrphanTransactions(n int) {
	if n <= 0 {
		return
	}
	orphanTransactions.Add(float64(n))
}
