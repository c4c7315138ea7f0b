// rooms/patch.go
package rooms

import "liverooms/models"

// RoomPatch is a partial room definition. A nil field means "not supplied";
// it is used both as the override set at creation and the patch on update.
type RoomPatch struct {
	RoomKey              *string            `json:"room_key"`
	Name                 *string            `json:"name"`
	Subtitle             *string            `json:"subtitle"`
	Description          *string            `json:"description"`
	Category             *string            `json:"category"`
	SpecialBadge         *string            `json:"special_badge"`
	ImageURL             *string            `json:"image_url"`
	FallbackGradient     *string            `json:"fallback_gradient"`
	BackgroundImage      *string            `json:"background_image"`
	MaxParticipants      *int               `json:"max_participants"`
	GiftsEnabled         *bool              `json:"gifts_enabled"`
	ChatEnabled          *bool              `json:"chat_enabled"`
	LayoutType           *models.LayoutType `json:"layout_type"`
	InterestThreshold    *int               `json:"interest_threshold"`
	CurrentInterestCount *int               `json:"current_interest_count"`
	DisclaimerRequired   *bool              `json:"disclaimer_required"`
	DisclaimerText       *string            `json:"disclaimer_text"`
	RoomType             *models.RoomType   `json:"room_type"`
	Visibility           *models.Visibility `json:"visibility"`
	TeamID               *uint              `json:"team_id"`
	AdminProfileID       *uint              `json:"admin_profile_id"`
	Status               *models.RoomStatus `json:"status"`
}

// apply copies every supplied field onto the room, except room_key, status
// and room_type, which the aggregate routes through their own rules.
func (p RoomPatch) apply(room *models.Room) {
	if p.Name != nil {
		room.Name = *p.Name
	}
	if p.Subtitle != nil {
		room.Subtitle = *p.Subtitle
	}
	if p.Description != nil {
		room.Description = *p.Description
	}
	if p.Category != nil {
		room.Category = *p.Category
	}
	if p.SpecialBadge != nil {
		room.SpecialBadge = *p.SpecialBadge
	}
	if p.ImageURL != nil {
		room.ImageURL = *p.ImageURL
	}
	if p.FallbackGradient != nil {
		room.FallbackGradient = *p.FallbackGradient
	}
	if p.BackgroundImage != nil {
		room.BackgroundImage = *p.BackgroundImage
	}
	if p.MaxParticipants != nil {
		room.MaxParticipants = *p.MaxParticipants
	}
	if p.GiftsEnabled != nil {
		room.GiftsEnabled = *p.GiftsEnabled
	}
	if p.ChatEnabled != nil {
		room.ChatEnabled = *p.ChatEnabled
	}
	if p.LayoutType != nil {
		room.LayoutType = *p.LayoutType
	}
	if p.InterestThreshold != nil {
		room.InterestThreshold = *p.InterestThreshold
	}
	if p.CurrentInterestCount != nil {
		room.CurrentInterestCount = *p.CurrentInterestCount
	}
	if p.DisclaimerRequired != nil {
		room.DisclaimerRequired = *p.DisclaimerRequired
	}
	if p.DisclaimerText != nil {
		room.DisclaimerText = *p.DisclaimerText
	}
	if p.Visibility != nil {
		room.Visibility = *p.Visibility
	}
	if p.TeamID != nil {
		id := *p.TeamID
		room.TeamID = &id
	}
	if p.AdminProfileID != nil {
		id := *p.AdminProfileID
		room.AdminProfileID = &id
	}
}
