package models

import "time"

const MaxParticipants = 10000

type Event struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Title              string    `gorm:"size:200;not null" json:"title"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	DateStart          time.Time `gorm:"not null;index" json:"date_start"`
	ParticipantsNumber int       `gorm:"not null" json:"participants_number"`
	IsPrivate          bool      `gorm:"not null" json:"is_private"`
	Logo               *string   `gorm:"size:255" json:"logo,omitempty"`
	CategoryID         *uint     `gorm:"index" json:"category_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Category *Category `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Features []Feature `gorm:"many2many:event_features" json:"features,omitempty"`
}

// EventOverview is an event together with its computed aggregates.
type EventOverview struct {
	Event       Event
	EnrollCount int64
	// Rate is the mean review rate rounded to one decimal, nil without
	// reviews.
	Rate *float64
	// Reviews is only loaded for the detail view.
	Reviews []Review
}
