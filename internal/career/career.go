// Package career records finished matches into a player's career ledger: one
// per-day match document plus an incremental month rollup.
package career

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/metrics"
	"github.com/mgualv/baba-elite/internal/pubsub"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ValidDate reports whether s is a YYYY-MM-DD match date.
func ValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// ValidMonth reports whether s is a YYYY-MM month id.
func ValidMonth(s string) bool {
	return monthRe.MatchString(s)
}

// LaunchInput is the payload for recording a finished match.
type LaunchInput struct {
	PlayerID     string `json:"playerId"`
	Date         string `json:"date"`
	Gols         int    `json:"gols"`
	Assistencias int    `json:"assistencias"`
	Vitoria      bool   `json:"vitoria"`
	CS           int    `json:"cs"`
	GS           int    `json:"gs"`
}

// Service applies match results to the ledger and publishes an event once
// both writes land.
type Service struct {
	store   league.LeagueStore
	pubsub  pubsub.PubSubClient
	metrics metrics.Metrics
}

// NewService creates a new career service.
func NewService(store league.LeagueStore, pubsubClient pubsub.PubSubClient, metrics metrics.Metrics) *Service {
	return &Service{
		store:   store,
		pubsub:  pubsubClient,
		metrics: metrics,
	}
}

// LaunchGame records a match for a player. It writes the per-day match
// document first and then increments the month rollup. The two writes are not
// atomic: if the second fails, the match document stays behind and the caller
// is expected to retry the whole launch. Returns the YYYY-MM month id that
// received the increments.
func (s *Service) LaunchGame(input LaunchInput) (string, error) {
	if input.PlayerID == "" {
		return "", fmt.Errorf("playerId is required")
	}
	if !ValidDate(input.Date) {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", input.Date)
	}
	monthID := input.Date[:7]

	rec := league.MatchRecord{
		Date:         input.Date,
		Month:        monthID,
		Jogos:        1,
		Gols:         input.Gols,
		Assistencias: input.Assistencias,
		Vitoria:      input.Vitoria,
		CS:           input.CS,
		GS:           input.GS,
	}
	if err := s.store.PutMatchRecord(input.PlayerID, rec); err != nil {
		return "", fmt.Errorf("failed to save match record: %w", err)
	}

	delta := league.MatchDelta{
		Gols:         input.Gols,
		Assistencias: input.Assistencias,
		Vitoria:      input.Vitoria,
		CS:           input.CS,
		GS:           input.GS,
	}
	if err := s.store.IncrementMonthStats(input.PlayerID, monthID, delta); err != nil {
		return "", fmt.Errorf("failed to update month stats: %w", err)
	}

	s.metrics.IncLedgerWrites()
	log.Info("Match recorded", "player_id", input.PlayerID, "date", input.Date, "month", monthID)

	ev := pubsub.MatchRecordedEvent{
		PlayerID:     input.PlayerID,
		Date:         input.Date,
		Month:        monthID,
		Gols:         input.Gols,
		Assistencias: input.Assistencias,
		Vitoria:      input.Vitoria,
		CS:           input.CS,
		GS:           input.GS,
	}
	if err := s.pubsub.SendMessage(pubsub.EventMatchRecorded, ev); err != nil {
		// Publishing is best-effort. The ledger writes already landed.
		log.Error("Failed to publish match recorded event", "player_id", input.PlayerID, "error", err)
	}

	return monthID, nil
}
