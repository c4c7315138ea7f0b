// rooms/coupler.go
package rooms

import "liverooms/models"

// TypeDefaults is the status/visibility pair a room type starts with, plus
// whether the type keeps its team assignment.
type TypeDefaults struct {
	Status     models.RoomStatus
	Visibility models.Visibility
	KeepTeam   bool
}

// ApplyTypeDefaults returns the fixed defaults for a room type:
//
//	official  -> live, public (skips interest gauging)
//	team      -> live, team_only (live the moment a team is assigned)
//	community -> interest, public (the only type that walks the interest funnel)
//
// It fires when the type is set at creation or changed on update, never on
// ordinary field edits.
func ApplyTypeDefaults(rt models.RoomType) TypeDefaults {
	switch rt {
	case models.RoomTypeTeam:
		return TypeDefaults{Status: models.StatusLive, Visibility: models.VisibilityTeamOnly, KeepTeam: true}
	case models.RoomTypeCommunity:
		return TypeDefaults{Status: models.StatusInterest, Visibility: models.VisibilityPublic}
	default:
		return TypeDefaults{Status: models.StatusLive, Visibility: models.VisibilityPublic}
	}
}

// couple rewrites status, visibility and team assignment from the room's
// type. Team rooms may opt into public visibility when the caller asked for
// it explicitly; leaving the team type clears the team.
func couple(room *models.Room, chosenVisibility *models.Visibility) {
	d := ApplyTypeDefaults(room.RoomType)
	room.Status = d.Status
	room.Visibility = d.Visibility
	if !d.KeepTeam {
		room.TeamID = nil
	}
	if room.RoomType == models.RoomTypeTeam && chosenVisibility != nil && *chosenVisibility == models.VisibilityPublic {
		room.Visibility = models.VisibilityPublic
	}
}
