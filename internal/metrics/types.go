package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	LedgerWrites        prometheus.Counter
	HallComputations    prometheus.Counter
	HallComputeDuration prometheus.Histogram
	PhotoUploadsSent    prometheus.Counter
	PhotoUploadsFailed  prometheus.Counter
	SlackNotifSent      prometheus.Counter
	SlackNotifFailed    prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
