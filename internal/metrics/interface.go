package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncLedgerWrites()
	IncHallComputations()
	ObserveHallComputeDuration(duration float64)
	IncPhotoUploadsSent()
	IncPhotoUploadsFailed()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
