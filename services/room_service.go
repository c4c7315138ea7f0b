// services/room_service.go - Room Lifecycle Business Logic
package services

import (
	"errors"
	"log"

	"liverooms/models"
	"liverooms/rooms"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrTemplateNotFound = errors.New("template not found")
)

type RoomService struct {
	db    *gorm.DB
	rules rooms.Ruleset
	feed  *StatusFeed
}

func NewRoomService(db *gorm.DB, rules rooms.Ruleset, feed *StatusFeed) *RoomService {
	return &RoomService{db: db, rules: rules, feed: feed}
}

// Rules exposes the active ruleset (eligibility floor, interest default).
func (s *RoomService) Rules() rooms.Ruleset {
	return s.rules
}

// teamLookup adapts the teams table to the core's lookup contract.
func (s *RoomService) teamLookup() rooms.TeamLookup {
	return func(teamID uint) (*models.Team, error) {
		var team models.Team
		err := s.db.Where("id = ? AND is_active = ?", teamID, true).First(&team).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &team, nil
	}
}

// ================== ROOM CRUD ==================

// CreateRoom expands an optional template with the caller's overrides and
// persists the resulting room. The admin flag is the requester's, threaded in
// explicitly by the handler.
func (s *RoomService) CreateRoom(templateID *string, overrides rooms.RoomPatch, requesterIsAdmin bool) (*models.Room, error) {
	var tpl *models.RoomTemplate
	if templateID != nil && *templateID != "" {
		var t models.RoomTemplate
		if err := s.db.Where("id = ? AND is_active = ?", *templateID, true).First(&t).Error; err != nil {
			return nil, ErrTemplateNotFound
		}
		tpl = &t
	}

	room, err := s.rules.Create(tpl, overrides, requesterIsAdmin, s.teamLookup())
	if err != nil {
		return nil, err
	}

	if s.RoomKeyExists(room.RoomKey) {
		return nil, &rooms.ConflictError{RoomKey: room.RoomKey}
	}

	if err := s.db.Create(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

// RoomKeyExists reports whether a room key is already taken.
func (s *RoomService) RoomKeyExists(key string) bool {
	var count int64
	s.db.Model(&models.Room{}).Where("room_key = ?", key).Count(&count)
	return count > 0
}

func (s *RoomService) GetRoom(id string) (*models.Room, error) {
	var room models.Room
	err := s.db.Preload("Team").First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) GetRoomByKey(key string) (*models.Room, error) {
	var room models.Room
	err := s.db.Preload("Team").First(&room, "room_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// ListRooms returns every room, newest first. Admin surface.
func (s *RoomService) ListRooms() ([]models.Room, error) {
	var list []models.Room
	err := s.db.Preload("Team").Order("created_at DESC").Find(&list).Error
	return list, err
}

// ListVisibleRooms returns the publicly listed rooms: public visibility and a
// status the home surfaces show (interest funnel onwards).
func (s *RoomService) ListVisibleRooms() ([]models.Room, error) {
	var list []models.Room
	err := s.db.
		Where("visibility = ?", models.VisibilityPublic).
		Where("status IN ?", []models.RoomStatus{
			models.StatusInterest, models.StatusOpeningSoon, models.StatusLive, models.StatusPaused,
		}).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// ListTeamRooms returns the rooms attached to a team, whatever their
// visibility. The caller is responsible for membership checks.
func (s *RoomService) ListTeamRooms(teamID uint) ([]models.Room, error) {
	var list []models.Room
	err := s.db.Where("team_id = ?", teamID).Order("created_at DESC").Find(&list).Error
	return list, err
}

// UpdateRoom applies a field patch as a manual admin edit. Room type changes
// to team re-run the eligibility gate here, since the pure update has no team
// lookup of its own.
func (s *RoomService) UpdateRoom(id string, patch rooms.RoomPatch, requesterIsAdmin bool) (*models.Room, error) {
	existing, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}

	if patch.RoomType != nil && *patch.RoomType == models.RoomTypeTeam && existing.RoomType != models.RoomTypeTeam {
		teamID := patch.TeamID
		if teamID == nil {
			teamID = existing.TeamID
		}
		if teamID == nil {
			return nil, rooms.FieldErrors{"team_id": "Please select a team"}
		}
		team, err := s.teamLookup()(*teamID)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, rooms.ErrTeamNotFound
		}
		if !s.rules.IsTeamEligible(team, requesterIsAdmin) {
			return nil, &rooms.EligibilityError{MinMembers: s.rules.MinTeamMembers, MemberCount: team.ApprovedMemberCount}
		}
	}

	updated, err := s.rules.Update(existing, patch, rooms.TriggerManual)
	if err != nil {
		return nil, err
	}

	if err := s.db.Save(updated).Error; err != nil {
		return nil, err
	}

	if updated.Status != existing.Status && s.feed != nil {
		s.feed.Broadcast(updated)
	}
	return updated, nil
}

// TransitionRoom performs a manual admin status change.
func (s *RoomService) TransitionRoom(id string, requested models.RoomStatus) (*models.Room, error) {
	existing, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}

	next, err := rooms.Transition(existing.Status, requested, rooms.TriggerManual)
	if err != nil {
		return nil, err
	}

	if next == existing.Status {
		return existing, nil
	}

	existing.Status = next
	if err := s.db.Model(&models.Room{}).Where("id = ?", id).Update("status", next).Error; err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Broadcast(existing)
	}
	return existing, nil
}

// DeleteRoom removes a room. Authorization (owner-only) is enforced at the
// admin route layer.
func (s *RoomService) DeleteRoom(id string) error {
	result := s.db.Delete(&models.Room{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// ================== INTEREST FEED ==================

// RegisterInterest increments a room's interest count and routes the
// threshold trigger through the lifecycle. The row is locked for the duration
// so concurrent interest updates and admin transitions are serialized against
// a current snapshot. Automatic transition failures are logged and dropped;
// the count still sticks.
func (s *RoomService) RegisterInterest(roomKey string) (*models.Room, error) {
	var out *models.Room

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "room_key = ?", roomKey).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		if err != nil {
			return err
		}

		count := room.CurrentInterestCount + 1
		patch := rooms.RoomPatch{CurrentInterestCount: &count}

		updated, err := s.rules.Update(&room, patch, rooms.TriggerThreshold)
		if err != nil {
			var te *rooms.TransitionError
			if !errors.As(err, &te) {
				return err
			}
			// Nobody initiated this transition, so nobody is told it failed.
			log.Printf("dropping threshold transition for room %s: %v", roomKey, te)
			room.CurrentInterestCount = count
			updated = &room
		}

		if err := tx.Save(updated).Error; err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.feed != nil {
		// Subscribers get every count tick, not just status changes.
		s.feed.Broadcast(out)
	}
	return out, nil
}
