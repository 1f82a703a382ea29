package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		LedgerWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "baba_ledger_writes_total",
			Help: "The total number of career ledger writes (match + month pairs).",
		}),
		HallComputations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "baba_hall_computations_total",
			Help: "The total number of hall-of-fame record computations.",
		}),
		HallComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "baba_hall_compute_duration_seconds",
			Help:    "The duration of hall-of-fame record computations.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		PhotoUploadsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "baba_photo_uploads_sent_total",
			Help: "The total number of player photos successfully uploaded.",
		}),
		PhotoUploadsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "baba_photo_uploads_failed_total",
			Help: "The total number of player photo uploads that failed.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "baba_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "baba_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "baba_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.LedgerWrites,
		s.HallComputations,
		s.HallComputeDuration,
		s.PhotoUploadsSent,
		s.PhotoUploadsFailed,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncLedgerWrites() {
	s.LedgerWrites.Inc()
}

func (s *Service) IncHallComputations() {
	s.HallComputations.Inc()
}

func (s *Service) ObserveHallComputeDuration(duration float64) {
	s.HallComputeDuration.Observe(duration)
}

func (s *Service) IncPhotoUploadsSent() {
	s.PhotoUploadsSent.Inc()
}

func (s *Service) IncPhotoUploadsFailed() {
	s.PhotoUploadsFailed.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
