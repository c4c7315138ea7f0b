package rooms

import (
	"testing"

	"liverooms/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyTypeDefaults(t *testing.T) {
	d := ApplyTypeDefaults(models.RoomTypeOfficial)
	assert.Equal(t, models.StatusLive, d.Status)
	assert.Equal(t, models.VisibilityPublic, d.Visibility)
	assert.False(t, d.KeepTeam)

	d = ApplyTypeDefaults(models.RoomTypeTeam)
	assert.Equal(t, models.StatusLive, d.Status)
	assert.Equal(t, models.VisibilityTeamOnly, d.Visibility)
	assert.True(t, d.KeepTeam)

	d = ApplyTypeDefaults(models.RoomTypeCommunity)
	assert.Equal(t, models.StatusInterest, d.Status)
	assert.Equal(t, models.VisibilityPublic, d.Visibility)
	assert.False(t, d.KeepTeam)
}

func TestCoupleClearsTeamOnTypeLeave(t *testing.T) {
	room := validRoom()
	room.RoomType = models.RoomTypeCommunity
	room.TeamID = ptr(uint(3))

	couple(&room, nil)

	assert.Nil(t, room.TeamID)
	assert.Equal(t, models.StatusInterest, room.Status)
	assert.Equal(t, models.VisibilityPublic, room.Visibility)
}

func TestCoupleTeamRoomPublicOptIn(t *testing.T) {
	room := validRoom()
	room.RoomType = models.RoomTypeTeam
	room.TeamID = ptr(uint(3))

	couple(&room, nil)
	assert.Equal(t, models.VisibilityTeamOnly, room.Visibility)

	couple(&room, ptr(models.VisibilityPublic))
	assert.Equal(t, models.VisibilityPublic, room.Visibility)
	assert.Equal(t, ptr(uint(3)), room.TeamID)

	// Private is not a valid choice for any type, the default wins
	couple(&room, ptr(models.VisibilityPrivate))
	assert.Equal(t, models.VisibilityTeamOnly, room.Visibility)
}
