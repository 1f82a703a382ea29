package notifier

import (
	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/pubsub"
	"github.com/mgualv/baba-elite/internal/selection"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For recorded matches, after the ledger writes complete.
	SendMatchRecorded(player *league.Player, ev pubsub.MatchRecordedEvent, dryRun bool) error
	// For saved best-XI selections.
	SendSelectionSaved(doc selection.Doc, dryRun bool) error
}
