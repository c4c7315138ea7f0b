// rooms/ruleset.go - Room Lifecycle & Eligibility Rules
//
// Everything in this package is pure: no database access, no clock, no
// ambient session state. Admin privilege always arrives as an explicit
// requesterIsAdmin parameter.
package rooms

// Source values for the tunable rules. The surrounding system may override
// both through Ruleset.
const (
	DefaultMinTeamMembers    = 100
	DefaultInterestThreshold = 5000
	DefaultMaxParticipants   = 12
)

// Ruleset carries the thresholds the room rules are evaluated against.
type Ruleset struct {
	// MinTeamMembers is the approved-member floor a team must reach before it
	// may be attached to a team room (admins bypass it).
	MinTeamMembers int

	// InterestThreshold is the fallback interest target for new rooms when
	// neither the template nor the caller provides one.
	InterestThreshold int
}

func DefaultRuleset() Ruleset {
	return Ruleset{
		MinTeamMembers:    DefaultMinTeamMembers,
		InterestThreshold: DefaultInterestThreshold,
	}
}
