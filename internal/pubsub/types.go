package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchRecorded EventType = "match-recorded"
)

// MatchRecordedEvent is published after both ledger writes succeed. The push
// subscription delivers it back to the HTTP server for async processing.
type MatchRecordedEvent struct {
	PlayerID     string `msgpack:"player_id"`
	Date         string `msgpack:"date"`
	Month        string `msgpack:"month"`
	Gols         int    `msgpack:"gols"`
	Assistencias int    `msgpack:"assistencias"`
	Vitoria      bool   `msgpack:"vitoria"`
	CS           int    `msgpack:"cs"`
	GS           int    `msgpack:"gs"`
}
