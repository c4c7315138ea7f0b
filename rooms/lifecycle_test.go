package rooms

import (
	"testing"

	"liverooms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualTransitions(t *testing.T) {
	cases := []struct {
		from, to models.RoomStatus
		ok       bool
	}{
		{models.StatusDraft, models.StatusInterest, true},
		{models.StatusInterest, models.StatusOpeningSoon, true},
		{models.StatusOpeningSoon, models.StatusLive, true},
		{models.StatusLive, models.StatusPaused, true},
		{models.StatusPaused, models.StatusLive, true},

		{models.StatusDraft, models.StatusLive, false},
		{models.StatusDraft, models.StatusOpeningSoon, false},
		{models.StatusInterest, models.StatusLive, false},
		{models.StatusLive, models.StatusOpeningSoon, false},
		{models.StatusPaused, models.StatusInterest, false},
	}

	for _, tc := range cases {
		next, err := Transition(tc.from, tc.to, TriggerManual)
		if tc.ok {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, next)
		} else {
			var transErr *TransitionError
			require.ErrorAs(t, err, &transErr, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.from, transErr.From)
			assert.Equal(t, tc.to, transErr.To)
			assert.Equal(t, TriggerManual, transErr.Trigger)
		}
	}
}

func TestManualReturnToDraftAlwaysAllowed(t *testing.T) {
	for _, from := range []models.RoomStatus{
		models.StatusDraft, models.StatusInterest, models.StatusOpeningSoon,
		models.StatusLive, models.StatusPaused,
	} {
		next, err := Transition(from, models.StatusDraft, TriggerManual)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDraft, next)
	}
}

func TestThresholdTransition(t *testing.T) {
	next, err := Transition(models.StatusInterest, models.StatusOpeningSoon, TriggerThreshold)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOpeningSoon, next)
}

func TestThresholdTransitionIsIdempotent(t *testing.T) {
	// A re-delivered threshold event on an already advanced room keeps the
	// current status and reports no error.
	for _, current := range []models.RoomStatus{
		models.StatusOpeningSoon, models.StatusLive, models.StatusPaused,
	} {
		next, err := Transition(current, models.StatusOpeningSoon, TriggerThreshold)
		require.NoError(t, err)
		assert.Equal(t, current, next)
	}
}

func TestThresholdTriggerCannotReachOtherStates(t *testing.T) {
	_, err := Transition(models.StatusInterest, models.StatusLive, TriggerThreshold)
	var transErr *TransitionError
	require.ErrorAs(t, err, &transErr)

	_, err = Transition(models.StatusDraft, models.StatusOpeningSoon, TriggerThreshold)
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, models.StatusDraft, transErr.From)
}

func TestUnknownTriggerRejected(t *testing.T) {
	_, err := Transition(models.StatusDraft, models.StatusInterest, Trigger("cron"))
	var transErr *TransitionError
	assert.ErrorAs(t, err, &transErr)
}
