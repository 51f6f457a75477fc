package models

import "time"

// Enroll is a user's registration for an event. Nothing prevents the same
// user from enrolling in the same event more than once.
type Enroll struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	EventID   *uint     `gorm:"index" json:"event_id"`
	CreatedAt time.Time `json:"created"`

	User  *User  `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Event *Event `gorm:"constraint:OnDelete:CASCADE" json:"event,omitempty"`
}
