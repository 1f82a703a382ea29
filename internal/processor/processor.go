// Package processor handles events delivered back to the server by the
// pub/sub push subscription.
package processor

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/notifier"
	"github.com/mgualv/baba-elite/internal/pubsub"
)

// Service processes decoded pub/sub events.
type Service struct {
	store    league.LeagueStore
	notifier notifier.Notifier
}

// NewService creates a new processor service.
func NewService(store league.LeagueStore, notifier notifier.Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
	}
}

// ProcessMatchRecorded looks up the player named in the event and sends the
// match notification. A missing player is not an error: the event may outlive
// a deleted profile, so the notification goes out without a name.
func (s *Service) ProcessMatchRecorded(ev pubsub.MatchRecordedEvent, dryRun bool) error {
	player, err := s.store.GetPlayerByID(ev.PlayerID)
	if err != nil {
		log.Warn("Failed to look up player for match event", "player_id", ev.PlayerID, "error", err)
		player = nil
	}

	if err := s.notifier.SendMatchRecorded(player, ev, dryRun); err != nil {
		return fmt.Errorf("failed to send match notification: %w", err)
	}
	return nil
}
