package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/metrics"
	"github.com/mgualv/baba-elite/internal/notifier"
	"github.com/mgualv/baba-elite/internal/pubsub"
	"github.com/mgualv/baba-elite/internal/selection"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

func (s *Notifier) SendMatchRecorded(player *league.Player, ev pubsub.MatchRecordedEvent, dryRun bool) error {
	msg := s.formatMatchRecorded(player, ev)
	return s.sendMessage(msg, dryRun)
}

func (s *Notifier) SendSelectionSaved(doc selection.Doc, dryRun bool) error {
	msg := s.formatSelectionSaved(doc)
	return s.sendMessage(msg, dryRun)
}

// formatMatchRecorded creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatMatchRecorded(player *league.Player, ev pubsub.MatchRecordedEvent) slack.Message {
	blocks := make([]slack.Block, 0)

	name := ev.PlayerID
	if player != nil && player.Nome != "" {
		name = player.Nome
	}

	headerText := slack.NewTextBlockObject("plain_text", "⚽ Jogo registrado!", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	result := "Derrota/Empate"
	if ev.Vitoria {
		result = "Vitória"
	}
	detailsText := fmt.Sprintf("%s — %s\nGols: %d | Assistências: %d | %s",
		name, ev.Date, ev.Gols, ev.Assistencias, result)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	contextText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Mês: %s", ev.Month), true, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}

// formatSelectionSaved creates the Slack message for a saved best-XI selection.
func (s *Notifier) formatSelectionSaved(doc selection.Doc) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Seleção atualizada!", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	filled := 0
	for _, slot := range doc.Slots {
		if slot.PlayerID != nil {
			filled++
		}
	}
	detailsText := fmt.Sprintf("%s\nFormação: %s | Posições preenchidas: %d/%d",
		doc.Title, doc.Formation, filled, len(doc.Slots))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
