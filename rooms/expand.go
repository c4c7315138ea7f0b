// rooms/expand.go
package rooms

import "liverooms/models"

// Expand builds the initial room draft: every field present in overrides
// wins, otherwise the template's value is used, otherwise a hard-coded
// fallback. Pure, no I/O; used only at creation time.
func (rs Ruleset) Expand(tpl *models.RoomTemplate, overrides RoomPatch) models.Room {
	room := models.Room{
		Category:          "entertainment",
		FallbackGradient:  models.Gradients[0],
		MaxParticipants:   DefaultMaxParticipants,
		LayoutType:        models.LayoutGrid,
		InterestThreshold: rs.InterestThreshold,
		GiftsEnabled:      true,
		ChatEnabled:       true,
		RoomType:          models.RoomTypeOfficial,
		Visibility:        models.VisibilityPublic,
		Status:            models.StatusDraft,
	}

	if tpl != nil {
		applyTemplate(&room, tpl)
	}

	if overrides.RoomKey != nil {
		room.RoomKey = *overrides.RoomKey
	}
	if overrides.RoomType != nil {
		room.RoomType = *overrides.RoomType
	}
	if overrides.Status != nil {
		room.Status = *overrides.Status
	}
	overrides.apply(&room)

	return room
}

func applyTemplate(room *models.Room, tpl *models.RoomTemplate) {
	if tpl.DefaultCategory != "" {
		room.Category = tpl.DefaultCategory
	}
	if tpl.DefaultFallbackGradient != "" {
		room.FallbackGradient = tpl.DefaultFallbackGradient
	}
	if tpl.DefaultInterestThreshold > 0 {
		room.InterestThreshold = tpl.DefaultInterestThreshold
	}
	if tpl.DefaultMaxParticipants > 0 {
		room.MaxParticipants = tpl.DefaultMaxParticipants
	}
	if tpl.DefaultDisclaimerRequired {
		room.DisclaimerRequired = true
		room.DisclaimerText = tpl.DefaultDisclaimerText
	}
	if tpl.DefaultSubtitle != "" {
		room.Subtitle = tpl.DefaultSubtitle
	}
	if tpl.DefaultSpecialBadge != "" {
		room.SpecialBadge = tpl.DefaultSpecialBadge
	}
	if tpl.LayoutType != "" {
		room.LayoutType = tpl.LayoutType
	}
	if tpl.GiftsEnabled != nil {
		room.GiftsEnabled = *tpl.GiftsEnabled
	}
	if tpl.ChatEnabled != nil {
		room.ChatEnabled = *tpl.ChatEnabled
	}
	if tpl.DefaultRoomType != "" {
		room.RoomType = tpl.DefaultRoomType
	}
	if tpl.DefaultVisibility != "" {
		room.Visibility = tpl.DefaultVisibility
	}
}
