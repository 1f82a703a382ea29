package notifier

import (
	"sync"

	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/pubsub"
	"github.com/mgualv/baba-elite/internal/selection"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendMatchRecordedFunc  func(player *league.Player, ev pubsub.MatchRecordedEvent, dryRun bool) error
	SendSelectionSavedFunc func(doc selection.Doc, dryRun bool) error

	// Call records
	SendMatchRecordedCalls []struct {
		Player *league.Player
		Event  pubsub.MatchRecordedEvent
	}
	SendSelectionSavedCalls []selection.Doc
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

var _ Notifier = (*Mock)(nil)

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchRecordedCalls = nil
	m.SendSelectionSavedCalls = nil
}

func (m *Mock) SendMatchRecorded(player *league.Player, ev pubsub.MatchRecordedEvent, dryRun bool) error {
	m.mu.Lock()
	m.SendMatchRecordedCalls = append(m.SendMatchRecordedCalls, struct {
		Player *league.Player
		Event  pubsub.MatchRecordedEvent
	}{player, ev})
	fn := m.SendMatchRecordedFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(player, ev, dryRun)
	}
	return nil
}

func (m *Mock) SendSelectionSaved(doc selection.Doc, dryRun bool) error {
	m.mu.Lock()
	m.SendSelectionSavedCalls = append(m.SendSelectionSavedCalls, doc)
	fn := m.SendSelectionSavedFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(doc, dryRun)
	}
	return nil
}
