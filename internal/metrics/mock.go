package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	ledgerWrites         int
	hallComputations     int
	hallComputeDurations []float64
	photoUploadsSent     int
	photoUploadsFailed   int
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		hallComputeDurations: make([]float64, 0),
	}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncLedgerWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ledgerWrites++
}

func (m *Mock) IncHallComputations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hallComputations++
}

func (m *Mock) ObserveHallComputeDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hallComputeDurations = append(m.hallComputeDurations, duration)
}

func (m *Mock) IncPhotoUploadsSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.photoUploadsSent++
}

func (m *Mock) IncPhotoUploadsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.photoUploadsFailed++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// LedgerWrites returns the number of times IncLedgerWrites was called.
func (m *Mock) LedgerWrites() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ledgerWrites
}

// HallComputations returns the number of times IncHallComputations was called.
func (m *Mock) HallComputations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hallComputations
}

// PhotoUploadsSent returns the number of times IncPhotoUploadsSent was called.
func (m *Mock) PhotoUploadsSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.photoUploadsSent
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
