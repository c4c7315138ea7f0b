// rooms/lifecycle.go
package rooms

import "liverooms/models"

// Trigger identifies who asked for a status change: an admin action or the
// interest-count feed crossing the threshold.
type Trigger string

const (
	TriggerManual    Trigger = "manual"
	TriggerThreshold Trigger = "threshold"
)

// manualEdges lists the admin-driven transitions. Any state may additionally
// return to draft (full unpublish); there is no terminal state.
var manualEdges = map[models.RoomStatus][]models.RoomStatus{
	models.StatusDraft:       {models.StatusInterest},
	models.StatusInterest:    {models.StatusOpeningSoon},
	models.StatusOpeningSoon: {models.StatusLive},
	models.StatusLive:        {models.StatusPaused},
	models.StatusPaused:      {models.StatusLive},
}

// Transition resolves a requested status change against the lifecycle graph.
//
// A threshold trigger may only produce opening_soon from interest, so an
// automated interest-count update can never force-start a broadcast. When the
// state has already advanced past interest, a re-delivered threshold event is
// a no-op returning the current status, which makes at-least-once delivery of
// interest updates safe.
func Transition(current, requested models.RoomStatus, trigger Trigger) (models.RoomStatus, error) {
	switch trigger {
	case TriggerThreshold:
		if requested != models.StatusOpeningSoon {
			return "", &TransitionError{From: current, To: requested, Trigger: trigger}
		}
		switch current {
		case models.StatusInterest:
			return models.StatusOpeningSoon, nil
		case models.StatusOpeningSoon, models.StatusLive, models.StatusPaused:
			return current, nil
		}
		return "", &TransitionError{From: current, To: requested, Trigger: trigger}

	case TriggerManual:
		if requested == models.StatusDraft {
			return models.StatusDraft, nil
		}
		for _, next := range manualEdges[current] {
			if next == requested {
				return requested, nil
			}
		}
		return "", &TransitionError{From: current, To: requested, Trigger: trigger}
	}

	return "", &TransitionError{From: current, To: requested, Trigger: trigger}
}
