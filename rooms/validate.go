// rooms/validate.go
package rooms

import (
	"regexp"
	"strings"

	"liverooms/models"
)

var roomKeyPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Validate checks a candidate room against the structural and business rules
// and returns every failure at once. Room key uniqueness is not checked here;
// the persistence layer surfaces that as a ConflictError.
func Validate(room *models.Room) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(room.RoomKey) == "" {
		errs["room_key"] = "Room key is required"
	} else if !roomKeyPattern.MatchString(room.RoomKey) {
		errs["room_key"] = "Room key must be lowercase letters, numbers, and hyphens only"
	}

	if strings.TrimSpace(room.Name) == "" {
		errs["name"] = "Room name is required"
	}

	if room.InterestThreshold < 1 {
		errs["interest_threshold"] = "Threshold must be at least 1"
	}

	if room.MaxParticipants < 1 || room.MaxParticipants > 100 {
		errs["max_participants"] = "Max participants must be between 1 and 100"
	}

	if room.DisclaimerRequired && strings.TrimSpace(room.DisclaimerText) == "" {
		errs["disclaimer_text"] = "Disclaimer text is required when disclaimer is enabled"
	}

	switch room.RoomType {
	case models.RoomTypeTeam:
		if room.TeamID == nil {
			errs["team_id"] = "Please select a team"
		}
		if room.Visibility != models.VisibilityTeamOnly && room.Visibility != models.VisibilityPublic {
			errs["visibility"] = "Team rooms must be team-only or public"
		}
	case models.RoomTypeOfficial, models.RoomTypeCommunity:
		if room.TeamID != nil {
			errs["team_id"] = "Only team rooms can be assigned a team"
		}
		if room.Visibility != models.VisibilityPublic {
			errs["visibility"] = "Official and community rooms must be public"
		}
	default:
		errs["room_type"] = "Room type must be official, team, or community"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
