// rooms/errors.go
package rooms

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"liverooms/models"
)

// ErrTeamNotFound is returned when a team room references a team the lookup
// collaborator cannot resolve.
var ErrTeamNotFound = errors.New("team not found")

// FieldErrors maps field names to human-readable reasons. All failing fields
// are reported together so a form can show every error at once.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid room definition: " + strings.Join(parts, "; ")
}

// EligibilityError is reported when a team does not meet the member threshold
// for a team room. It is distinct from FieldErrors so callers can surface it
// next to the team picker rather than as a generic field message.
type EligibilityError struct {
	MinMembers  int
	MemberCount int
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("team does not meet the %d-member threshold (%d approved members)",
		e.MinMembers, e.MemberCount)
}

// TransitionError is reported when a status change is not reachable via a
// defined edge for the given trigger kind.
type TransitionError struct {
	From    models.RoomStatus
	To      models.RoomStatus
	Trigger Trigger
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move from %s to %s via %s", e.From, e.To, e.Trigger)
}

// ConflictError is raised by the persistence layer when a room key is already
// taken. It lives here so all room error types share one package.
type ConflictError struct {
	RoomKey string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room key %q already exists", e.RoomKey)
}
