package rooms

import (
	"testing"

	"liverooms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandFallbacks(t *testing.T) {
	rs := DefaultRuleset()
	room := rs.Expand(nil, RoomPatch{})

	assert.Equal(t, "entertainment", room.Category)
	assert.Equal(t, models.Gradients[0], room.FallbackGradient)
	assert.Equal(t, 12, room.MaxParticipants)
	assert.Equal(t, models.LayoutGrid, room.LayoutType)
	assert.Equal(t, 5000, room.InterestThreshold)
	assert.True(t, room.GiftsEnabled)
	assert.True(t, room.ChatEnabled)
	assert.Equal(t, models.RoomTypeOfficial, room.RoomType)
	assert.Equal(t, models.VisibilityPublic, room.Visibility)
	assert.Equal(t, models.StatusDraft, room.Status)
}

func TestExpandTemplateOverridesFallbacks(t *testing.T) {
	rs := DefaultRuleset()
	tpl := &models.RoomTemplate{
		Name:                      "Music Session",
		DefaultCategory:           "music",
		DefaultInterestThreshold:  250,
		DefaultMaxParticipants:    6,
		DefaultDisclaimerRequired: true,
		DefaultDisclaimerText:     "Live audio, expect noise",
		LayoutType:                models.LayoutPanel,
		GiftsEnabled:              ptr(false),
		DefaultRoomType:           models.RoomTypeCommunity,
	}

	room := rs.Expand(tpl, RoomPatch{})

	assert.Equal(t, "music", room.Category)
	assert.Equal(t, 250, room.InterestThreshold)
	assert.Equal(t, 6, room.MaxParticipants)
	assert.True(t, room.DisclaimerRequired)
	assert.Equal(t, "Live audio, expect noise", room.DisclaimerText)
	assert.Equal(t, models.LayoutPanel, room.LayoutType)
	assert.False(t, room.GiftsEnabled)
	assert.True(t, room.ChatEnabled) // not templated, fallback survives
	assert.Equal(t, models.RoomTypeCommunity, room.RoomType)
}

func TestExpandOverridesWinOverTemplate(t *testing.T) {
	rs := DefaultRuleset()
	tpl := &models.RoomTemplate{
		DefaultCategory:          "music",
		DefaultInterestThreshold: 250,
		DefaultMaxParticipants:   6,
	}

	room := rs.Expand(tpl, RoomPatch{
		RoomKey:           ptr("jazz-corner"),
		Name:              ptr("Jazz Corner"),
		Category:          ptr("education"),
		InterestThreshold: ptr(40),
	})

	assert.Equal(t, "jazz-corner", room.RoomKey)
	assert.Equal(t, "Jazz Corner", room.Name)
	assert.Equal(t, "education", room.Category)
	assert.Equal(t, 40, room.InterestThreshold)
	assert.Equal(t, 6, room.MaxParticipants) // template value untouched by patch
}

func TestExpandedTemplateProducesValidRoom(t *testing.T) {
	// Any sensible template plus the identity fields must survive validation.
	rs := DefaultRuleset()
	tpl := &models.RoomTemplate{
		DefaultCategory:          "gaming",
		DefaultInterestThreshold: 1000,
		DefaultMaxParticipants:   20,
		LayoutType:               models.LayoutVersus,
	}

	room := rs.Expand(tpl, RoomPatch{
		RoomKey: ptr("ranked-arena"),
		Name:    ptr("Ranked Arena"),
	})

	require.Nil(t, Validate(&room))
}
