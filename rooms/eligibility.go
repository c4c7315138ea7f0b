// rooms/eligibility.go
package rooms

import "liverooms/models"

// IsTeamEligible reports whether a team qualifies for a dedicated room:
// the requester is an admin, or the team's approved membership meets the
// configured floor. This is the single gating rule for attaching a team to
// a team-scoped room.
func (rs Ruleset) IsTeamEligible(team *models.Team, requesterIsAdmin bool) bool {
	if requesterIsAdmin {
		return true
	}
	if team == nil {
		return false
	}
	return team.ApprovedMemberCount >= rs.MinTeamMembers
}
