// services/status_feed.go - In-process fan-out of room state changes
package services

import (
	"sync"

	"liverooms/models"
)

// RoomEvent is the payload pushed to websocket subscribers whenever a room's
// status or interest count changes.
type RoomEvent struct {
	RoomKey              string            `json:"room_key"`
	Status               models.RoomStatus `json:"status"`
	CurrentInterestCount int               `json:"current_interest_count"`
	InterestThreshold    int               `json:"interest_threshold"`
}

// StatusFeed fans room events out to per-room subscriber channels. Slow
// subscribers are skipped rather than blocking the publisher.
type StatusFeed struct {
	mu   sync.RWMutex
	subs map[string]map[chan RoomEvent]struct{}
}

func NewStatusFeed() *StatusFeed {
	return &StatusFeed{
		subs: make(map[string]map[chan RoomEvent]struct{}),
	}
}

// Subscribe registers for events on a room key. The caller must Unsubscribe
// when done.
func (f *StatusFeed) Subscribe(roomKey string) chan RoomEvent {
	ch := make(chan RoomEvent, 8)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs[roomKey] == nil {
		f.subs[roomKey] = make(map[chan RoomEvent]struct{})
	}
	f.subs[roomKey][ch] = struct{}{}
	return ch
}

func (f *StatusFeed) Unsubscribe(roomKey string, ch chan RoomEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if set, ok := f.subs[roomKey]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(f.subs, roomKey)
		}
	}
	close(ch)
}

// Broadcast publishes the room's current state to its subscribers.
func (f *StatusFeed) Broadcast(room *models.Room) {
	event := RoomEvent{
		RoomKey:              room.RoomKey,
		Status:               room.Status,
		CurrentInterestCount: room.CurrentInterestCount,
		InterestThreshold:    room.InterestThreshold,
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for ch := range f.subs[room.RoomKey] {
		select {
		case ch <- event:
		default:
		}
	}
}
