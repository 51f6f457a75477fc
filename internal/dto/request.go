package dto

import (
	"time"

	"github.com/Eursukkul/events-portal/internal/models"
)

// DefaultParticipants is the capacity of an event created without one.
const DefaultParticipants = 10

type EventRequest struct {
	Title              string    `json:"title" validate:"required,max=200"`
	Description        string    `json:"description"`
	DateStart          time.Time `json:"date_start" validate:"required"`
	ParticipantsNumber *int      `json:"participants_number" validate:"omitempty,gte=0,lte=10000"`
	IsPrivate          bool      `json:"is_private"`
	Logo               *string   `json:"logo" validate:"omitempty,max=255"`
	CategoryID         *uint     `json:"category_id"`
	FeatureIDs         []uint    `json:"features"`
}

func (r *EventRequest) ToModel() *models.Event {
	capacity := DefaultParticipants
	if r.ParticipantsNumber != nil {
		capacity = *r.ParticipantsNumber
	}
	return &models.Event{
		Title:              r.Title,
		Description:        r.Description,
		DateStart:          r.DateStart,
		ParticipantsNumber: capacity,
		IsPrivate:          r.IsPrivate,
		Logo:               r.Logo,
		CategoryID:         r.CategoryID,
	}
}

type CategoryRequest struct {
	Title string `json:"title" validate:"required,max=90"`
}

type FeatureRequest struct {
	Title string `json:"title" validate:"required,max=250"`
}

type EnrollRequest struct {
	UserID  uint `json:"user_id" validate:"required"`
	EventID uint `json:"event_id" validate:"required"`
}

type ReviewUpdateRequest struct {
	Rate *int   `json:"rate" validate:"required,gte=0,lte=5"`
	Text string `json:"text" validate:"required"`
}
