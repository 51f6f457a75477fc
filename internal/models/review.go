package models

import "time"

const (
	MinRate = 0
	MaxRate = 5
)

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_review_user_event" json:"user_id"`
	EventID   uint      `gorm:"not null;uniqueIndex:idx_review_user_event;index" json:"event_id"`
	Rate      int       `gorm:"not null" json:"rate"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`

	User  *User  `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Event *Event `gorm:"constraint:OnDelete:CASCADE" json:"event,omitempty"`
}
