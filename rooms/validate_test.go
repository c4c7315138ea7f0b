package rooms

import (
	"testing"

	"liverooms/models"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

// validRoom returns an official room that passes every validation rule.
func validRoom() models.Room {
	return models.Room{
		RoomKey:           "friday-night-show",
		Name:              "Friday Night Show",
		Category:          "entertainment",
		MaxParticipants:   12,
		LayoutType:        models.LayoutGrid,
		InterestThreshold: 5000,
		RoomType:          models.RoomTypeOfficial,
		Visibility:        models.VisibilityPublic,
		Status:            models.StatusLive,
	}
}

func TestValidateAcceptsValidRoom(t *testing.T) {
	room := validRoom()
	assert.Nil(t, Validate(&room))
}

func TestValidateRoomKey(t *testing.T) {
	room := validRoom()
	room.RoomKey = ""
	errs := Validate(&room)
	assert.Equal(t, "Room key is required", errs["room_key"])

	room.RoomKey = "   "
	errs = Validate(&room)
	assert.Equal(t, "Room key is required", errs["room_key"])

	room.RoomKey = "Friday Night"
	errs = Validate(&room)
	assert.Equal(t, "Room key must be lowercase letters, numbers, and hyphens only", errs["room_key"])

	room.RoomKey = "friday_night"
	errs = Validate(&room)
	assert.Equal(t, "Room key must be lowercase letters, numbers, and hyphens only", errs["room_key"])

	room.RoomKey = "friday-night-2"
	assert.Nil(t, Validate(&room))
}

func TestValidateName(t *testing.T) {
	room := validRoom()
	room.Name = "  "
	errs := Validate(&room)
	assert.Equal(t, "Room name is required", errs["name"])
}

func TestValidateThreshold(t *testing.T) {
	room := validRoom()

	room.InterestThreshold = 0
	errs := Validate(&room)
	assert.Equal(t, "Threshold must be at least 1", errs["interest_threshold"])

	room.InterestThreshold = 1
	assert.Nil(t, Validate(&room))
}

func TestValidateMaxParticipantsBounds(t *testing.T) {
	room := validRoom()

	room.MaxParticipants = 0
	errs := Validate(&room)
	assert.Equal(t, "Max participants must be between 1 and 100", errs["max_participants"])

	room.MaxParticipants = 1
	assert.Nil(t, Validate(&room))

	room.MaxParticipants = 100
	assert.Nil(t, Validate(&room))

	room.MaxParticipants = 101
	errs = Validate(&room)
	assert.Equal(t, "Max participants must be between 1 and 100", errs["max_participants"])
}

func TestValidateDisclaimer(t *testing.T) {
	room := validRoom()
	room.DisclaimerRequired = true
	room.DisclaimerText = ""

	errs := Validate(&room)
	assert.Equal(t, "Disclaimer text is required when disclaimer is enabled", errs["disclaimer_text"])

	room.DisclaimerText = "Viewer discretion advised"
	assert.Nil(t, Validate(&room))

	// Disabled disclaimer needs no text
	room.DisclaimerRequired = false
	room.DisclaimerText = ""
	assert.Nil(t, Validate(&room))
}

func TestValidateTeamRoomNeedsTeam(t *testing.T) {
	room := validRoom()
	room.RoomType = models.RoomTypeTeam
	room.Visibility = models.VisibilityTeamOnly
	room.TeamID = nil

	errs := Validate(&room)
	assert.Equal(t, "Please select a team", errs["team_id"])

	room.TeamID = ptr(uint(7))
	assert.Nil(t, Validate(&room))
}

func TestValidateTypeVisibilityCoupling(t *testing.T) {
	room := validRoom()
	room.RoomType = models.RoomTypeTeam
	room.TeamID = ptr(uint(7))

	room.Visibility = models.VisibilityPrivate
	errs := Validate(&room)
	assert.Equal(t, "Team rooms must be team-only or public", errs["visibility"])

	room.Visibility = models.VisibilityPublic
	assert.Nil(t, Validate(&room))

	// Official rooms may not carry a team or restricted visibility
	room = validRoom()
	room.TeamID = ptr(uint(7))
	room.Visibility = models.VisibilityTeamOnly
	errs = Validate(&room)
	assert.Equal(t, "Only team rooms can be assigned a team", errs["team_id"])
	assert.Equal(t, "Official and community rooms must be public", errs["visibility"])

	room = validRoom()
	room.RoomType = models.RoomType("broadcast")
	errs = Validate(&room)
	assert.Equal(t, "Room type must be official, team, or community", errs["room_type"])
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	room := models.Room{
		RoomKey:            "BAD KEY",
		Name:               "",
		MaxParticipants:    0,
		InterestThreshold:  0,
		DisclaimerRequired: true,
		RoomType:           models.RoomTypeOfficial,
		Visibility:         models.VisibilityPublic,
	}

	errs := Validate(&room)
	assert.Len(t, errs, 5)
	assert.Contains(t, errs, "room_key")
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "max_participants")
	assert.Contains(t, errs, "interest_threshold")
	assert.Contains(t, errs, "disclaimer_text")

	// Error text lists fields deterministically
	assert.Contains(t, errs.Error(), "invalid room definition: ")
	assert.Contains(t, errs.Error(), "room_key: ")
}
