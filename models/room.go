// models/room.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomStatus string

const (
	StatusDraft       RoomStatus = "draft"
	StatusInterest    RoomStatus = "interest"
	StatusOpeningSoon RoomStatus = "opening_soon"
	StatusLive        RoomStatus = "live"
	StatusPaused      RoomStatus = "paused"
)

type RoomType string

const (
	RoomTypeOfficial  RoomType = "official"
	RoomTypeTeam      RoomType = "team"
	RoomTypeCommunity RoomType = "community"
)

type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityTeamOnly Visibility = "team_only"
)

type LayoutType string

const (
	LayoutGrid   LayoutType = "grid"
	LayoutVersus LayoutType = "versus"
	LayoutPanel  LayoutType = "panel"
)

// Categories lists the allowed room categories.
var Categories = []string{"gaming", "music", "entertainment", "sports", "lifestyle", "education"}

// Gradients is the fallback palette used when a room has no banner image.
var Gradients = []string{
	"from-purple-600 to-pink-600",
	"from-blue-600 to-cyan-500",
	"from-green-600 to-emerald-500",
	"from-orange-500 to-red-600",
	"from-violet-600 to-indigo-600",
	"from-rose-500 to-pink-500",
	"from-amber-500 to-yellow-400",
	"from-teal-500 to-cyan-400",
}

// Room is a provisioned shared space that can host a live broadcast.
type Room struct {
	ID      string `json:"id" gorm:"primaryKey;size:36"`
	RoomKey string `json:"room_key" gorm:"uniqueIndex;not null;size:100"`

	Name         string `json:"name" gorm:"not null;size:100"`
	Subtitle     string `json:"subtitle" gorm:"size:200"`
	Description  string `json:"description" gorm:"type:text"`
	Category     string `json:"category" gorm:"size:50;index"`
	SpecialBadge string `json:"special_badge" gorm:"size:100"`

	ImageURL         string `json:"image_url" gorm:"size:500"`
	FallbackGradient string `json:"fallback_gradient" gorm:"size:100"`
	BackgroundImage  string `json:"background_image" gorm:"size:500"`

	MaxParticipants int        `json:"max_participants" gorm:"default:12"`
	GiftsEnabled    bool       `json:"gifts_enabled" gorm:"default:true"`
	ChatEnabled     bool       `json:"chat_enabled" gorm:"default:true"`
	LayoutType      LayoutType `json:"layout_type" gorm:"default:'grid';size:20"`

	InterestThreshold    int `json:"interest_threshold" gorm:"default:5000"`
	CurrentInterestCount int `json:"current_interest_count" gorm:"default:0"`

	DisclaimerRequired bool   `json:"disclaimer_required" gorm:"default:false"`
	DisclaimerText     string `json:"disclaimer_text" gorm:"type:text"`

	RoomType       RoomType   `json:"room_type" gorm:"not null;default:'official';size:20;index"`
	Visibility     Visibility `json:"visibility" gorm:"not null;default:'public';size:20;index"`
	TeamID         *uint      `json:"team_id" gorm:"index"`
	Team           *Team      `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	AdminProfileID *uint      `json:"admin_profile_id" gorm:"index"`
	AdminProfile   *User      `json:"admin_profile,omitempty" gorm:"foreignKey:AdminProfileID"`

	Status RoomStatus `json:"status" gorm:"not null;default:'draft';size:20;index"`

	TemplateID *string   `json:"template_id" gorm:"size:36"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
