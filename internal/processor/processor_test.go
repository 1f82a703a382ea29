package processor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/notifier"
	"github.com/mgualv/baba-elite/internal/pubsub"
)

func TestProcessMatchRecorded(t *testing.T) {
	store := league.NewMock()
	store.GetPlayerByIDFunc = func(id string) (*league.Player, error) {
		return &league.Player{ID: id, Nome: "Rafael"}, nil
	}
	n := notifier.NewMock()
	svc := NewService(store, n)

	ev := pubsub.MatchRecordedEvent{PlayerID: "p1", Date: "2026-02-10", Month: "2026-02", Gols: 2}
	require.NoError(t, svc.ProcessMatchRecorded(ev, false))

	require.Len(t, n.SendMatchRecordedCalls, 1)
	call := n.SendMatchRecordedCalls[0]
	require.NotNil(t, call.Player)
	assert.Equal(t, "Rafael", call.Player.Nome)
	assert.Equal(t, ev, call.Event)
}

func TestProcessMatchRecorded_UnknownPlayerStillNotifies(t *testing.T) {
	store := league.NewMock()
	n := notifier.NewMock()
	svc := NewService(store, n)

	ev := pubsub.MatchRecordedEvent{PlayerID: "gone", Month: "2026-02"}
	require.NoError(t, svc.ProcessMatchRecorded(ev, false))

	require.Len(t, n.SendMatchRecordedCalls, 1)
	assert.Nil(t, n.SendMatchRecordedCalls[0].Player)
}

func TestProcessMatchRecorded_NotifierFailure(t *testing.T) {
	store := league.NewMock()
	n := notifier.NewMock()
	n.SendMatchRecordedFunc = func(player *league.Player, ev pubsub.MatchRecordedEvent, dryRun bool) error {
		return errors.New("slack is down")
	}
	svc := NewService(store, n)

	err := svc.ProcessMatchRecorded(pubsub.MatchRecordedEvent{PlayerID: "p1"}, false)
	assert.Error(t, err)
}
