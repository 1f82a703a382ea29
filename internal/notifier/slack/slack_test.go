package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/metrics"
	"github.com/mgualv/baba-elite/internal/pubsub"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlackClient struct {
	calls int
	err   error
}

func (f *fakeSlackClient) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	f.calls++
	if f.err != nil {
		return "", "", f.err
	}
	return channelID, "123.456", nil
}

func TestSendMatchRecorded(t *testing.T) {
	api := &fakeSlackClient{}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", m)

	player := &league.Player{ID: "p1", Nome: "Rafael"}
	ev := pubsub.MatchRecordedEvent{PlayerID: "p1", Date: "2026-02-10", Month: "2026-02", Gols: 2, Vitoria: true}

	err := n.SendMatchRecorded(player, ev, false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, 1, m.SlackNotifSent())
}

func TestSendMatchRecorded_Failure(t *testing.T) {
	api := &fakeSlackClient{err: errors.New("channel_not_found")}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", m)

	err := n.SendMatchRecorded(nil, pubsub.MatchRecordedEvent{PlayerID: "p1"}, false)
	require.Error(t, err)
	assert.Equal(t, 1, m.SlackNotifFailed())
}

func TestSendMatchRecorded_DryRunDoesNotPost(t *testing.T) {
	api := &fakeSlackClient{}
	n := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	err := n.SendMatchRecorded(nil, pubsub.MatchRecordedEvent{PlayerID: "p1"}, true)
	require.NoError(t, err)
	assert.Zero(t, api.calls)
}
