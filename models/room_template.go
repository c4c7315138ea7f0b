// models/room_template.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomTemplate is a reusable set of default field values used to pre-fill
// new room definitions. Identity and bookkeeping are never templated.
type RoomTemplate struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	Name        string `json:"name" gorm:"not null;size:100"`
	Description string `json:"description" gorm:"type:text"`

	DefaultCategory           string     `json:"default_category" gorm:"size:50"`
	DefaultFallbackGradient   string     `json:"default_fallback_gradient" gorm:"size:100"`
	DefaultInterestThreshold  int        `json:"default_interest_threshold" gorm:"default:0"`
	DefaultMaxParticipants    int        `json:"default_max_participants" gorm:"default:0"`
	DefaultDisclaimerRequired bool       `json:"default_disclaimer_required" gorm:"default:false"`
	DefaultDisclaimerText     string     `json:"default_disclaimer_text" gorm:"type:text"`
	DefaultSubtitle           string     `json:"default_subtitle" gorm:"size:200"`
	DefaultSpecialBadge       string     `json:"default_special_badge" gorm:"size:100"`
	LayoutType                LayoutType `json:"layout_type" gorm:"size:20"`
	GiftsEnabled              *bool      `json:"gifts_enabled"`
	ChatEnabled               *bool      `json:"chat_enabled"`
	DefaultRoomType           RoomType   `json:"default_room_type" gorm:"size:20"`
	DefaultVisibility         Visibility `json:"default_visibility" gorm:"size:20"`

	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RoomTemplate) TableName() string {
	return "room_templates"
}

func (t *RoomTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
