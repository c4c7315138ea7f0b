package services

import (
	"testing"

	"liverooms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFeedDeliversToSubscribers(t *testing.T) {
	feed := NewStatusFeed()
	ch := feed.Subscribe("main-stage")
	defer feed.Unsubscribe("main-stage", ch)

	feed.Broadcast(&models.Room{
		RoomKey:              "main-stage",
		Status:               models.StatusLive,
		CurrentInterestCount: 7,
		InterestThreshold:    100,
	})

	select {
	case event := <-ch:
		assert.Equal(t, "main-stage", event.RoomKey)
		assert.Equal(t, models.StatusLive, event.Status)
		assert.Equal(t, 7, event.CurrentInterestCount)
		assert.Equal(t, 100, event.InterestThreshold)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestStatusFeedScopesByRoomKey(t *testing.T) {
	feed := NewStatusFeed()
	ch := feed.Subscribe("main-stage")
	defer feed.Unsubscribe("main-stage", ch)

	feed.Broadcast(&models.Room{RoomKey: "other-room", Status: models.StatusLive})

	assert.Empty(t, ch)
}

func TestStatusFeedSkipsFullSubscribers(t *testing.T) {
	feed := NewStatusFeed()
	ch := feed.Subscribe("main-stage")
	defer feed.Unsubscribe("main-stage", ch)

	room := &models.Room{RoomKey: "main-stage", Status: models.StatusInterest}
	for i := 0; i < 20; i++ {
		feed.Broadcast(room)
	}

	// Channel capacity bounds the backlog; the publisher never blocked.
	assert.Equal(t, cap(ch), len(ch))
}

func TestStatusFeedUnsubscribeClosesChannel(t *testing.T) {
	feed := NewStatusFeed()
	ch := feed.Subscribe("main-stage")
	feed.Unsubscribe("main-stage", ch)

	_, ok := <-ch
	require.False(t, ok)

	// Broadcasting after the last subscriber left is harmless
	feed.Broadcast(&models.Room{RoomKey: "main-stage"})
}
