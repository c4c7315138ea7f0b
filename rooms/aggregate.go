// rooms/aggregate.go
package rooms

import "liverooms/models"

// TeamLookup resolves a team id for eligibility checks. Returning (nil, nil)
// means the team does not exist.
type TeamLookup func(teamID uint) (*models.Team, error)

// Create builds a persist-ready room from an optional template and caller
// overrides: expansion, team eligibility, type coupling, then validation.
// The result still lacks id and timestamps, which the storage layer assigns.
func (rs Ruleset) Create(tpl *models.RoomTemplate, overrides RoomPatch, requesterIsAdmin bool, lookup TeamLookup) (*models.Room, error) {
	room := rs.Expand(tpl, overrides)

	if room.RoomType == models.RoomTypeTeam && room.TeamID != nil {
		if lookup == nil {
			return nil, ErrTeamNotFound
		}
		team, err := lookup(*room.TeamID)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, ErrTeamNotFound
		}
		if !rs.IsTeamEligible(team, requesterIsAdmin) {
			return nil, &EligibilityError{MinMembers: rs.MinTeamMembers, MemberCount: team.ApprovedMemberCount}
		}
	}

	// The caller's visibility choice wins; absent that, a template that
	// specifies one speaks for the caller.
	chosenVisibility := overrides.Visibility
	if chosenVisibility == nil && tpl != nil && tpl.DefaultVisibility != "" {
		v := tpl.DefaultVisibility
		chosenVisibility = &v
	}
	couple(&room, chosenVisibility)

	// New rooms always start gathering interest from zero.
	room.CurrentInterestCount = 0
	if tpl != nil {
		id := tpl.ID
		room.TemplateID = &id
	}

	if errs := Validate(&room); errs != nil {
		return nil, errs
	}
	return &room, nil
}

// Update applies a patch to an existing room. Status changes are routed
// through the lifecycle graph and room type changes through the coupler;
// the room key is immutable after creation. The input room is not mutated.
//
// A threshold-triggered update carries only an interest count: elevation to
// opening_soon is derived from the count crossing the threshold, never taken
// from the patch's status field.
func (rs Ruleset) Update(existing *models.Room, patch RoomPatch, trigger Trigger) (*models.Room, error) {
	if patch.RoomKey != nil && *patch.RoomKey != existing.RoomKey {
		return nil, FieldErrors{"room_key": "Room key cannot be changed"}
	}

	updated := *existing
	patch.apply(&updated)

	switch trigger {
	case TriggerThreshold:
		if updated.CurrentInterestCount >= updated.InterestThreshold {
			next, err := Transition(updated.Status, models.StatusOpeningSoon, TriggerThreshold)
			if err != nil {
				return nil, err
			}
			updated.Status = next
		}

	case TriggerManual:
		if patch.RoomType != nil && *patch.RoomType != existing.RoomType {
			// The coupler owns the status on a type change; a patch that
			// also names one is ambiguous and refused outright.
			if patch.Status != nil {
				return nil, FieldErrors{"status": "Status cannot be set in the same update as a room type change"}
			}
			updated.RoomType = *patch.RoomType
			couple(&updated, patch.Visibility)
		} else if patch.Status != nil && *patch.Status != existing.Status {
			next, err := Transition(existing.Status, *patch.Status, TriggerManual)
			if err != nil {
				return nil, err
			}
			updated.Status = next
		}

	default:
		return nil, &TransitionError{From: existing.Status, To: existing.Status, Trigger: trigger}
	}

	if errs := Validate(&updated); errs != nil {
		return nil, errs
	}
	return &updated, nil
}
