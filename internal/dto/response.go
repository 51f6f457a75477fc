package dto

import (
	"time"

	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/occupancy"
)

// DateLayout renders dates as DD.MM.YYYY.
const DateLayout = "02.01.2006"

// DefaultLogo is served from the static root for events without a logo.
const DefaultLogo = "images/svg-icon/event.svg"

type ErrorResponse struct {
	Message string `json:"message"`
}

// ReviewResponse is the body of every review submission, successful or not.
type ReviewResponse struct {
	OK       bool   `json:"ok"`
	Msg      string `json:"msg"`
	Rate     string `json:"rate"`
	Text     string `json:"text"`
	Created  string `json:"created"`
	UserName string `json:"user_name"`
}

// AssetURLs holds the public prefixes for uploaded media and static files.
type AssetURLs struct {
	Static string
	Media  string
}

func (a AssetURLs) Logo(logo *string) string {
	if logo == nil || *logo == "" {
		return a.Static + DefaultLogo
	}
	return a.Media + *logo
}

type CategoryRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type EventSummary struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	DateStart   time.Time        `json:"date_start"`
	IsPrivate   bool             `json:"is_private"`
	LogoURL     string           `json:"logo_url"`
	Category    *CategoryRef     `json:"category"`
	Features    []models.Feature `json:"features"`
	Rate        *float64         `json:"rate"`
	EnrollCount int64            `json:"enroll_count"`
	PlacesLeft  int              `json:"places_left"`
}

func NewEventSummary(ov models.EventOverview, assets AssetURLs) EventSummary {
	e := ov.Event
	features := e.Features
	if features == nil {
		features = []models.Feature{}
	}
	return EventSummary{
		ID:          e.ID,
		Title:       e.Title,
		DateStart:   e.DateStart,
		IsPrivate:   e.IsPrivate,
		LogoURL:     assets.Logo(e.Logo),
		Category:    categoryRef(e.Category),
		Features:    features,
		Rate:        ov.Rate,
		EnrollCount: ov.EnrollCount,
		PlacesLeft:  occupancy.PlacesLeft(e.ParticipantsNumber, int(ov.EnrollCount)),
	}
}

type BrowseResponse struct {
	Events     []EventSummary    `json:"events"`
	Categories []models.Category `json:"categories"`
	Features   []models.Feature  `json:"features"`
}

type ReviewItem struct {
	ID       uint   `json:"id"`
	UserName string `json:"user_name"`
	Rate     int    `json:"rate"`
	Text     string `json:"text"`
	Created  string `json:"created"`
}

// EventDetail is the full detail page payload.
type EventDetail struct {
	EventSummary
	Description        string       `json:"description"`
	ParticipantsNumber int          `json:"participants_number"`
	Percent            int          `json:"percent"`
	Occupancy          string       `json:"occupancy"`
	Reviews            []ReviewItem `json:"reviews"`
}

func NewEventDetail(ov models.EventOverview, assets AssetURLs) EventDetail {
	capacity := ov.Event.ParticipantsNumber
	enrolled := int(ov.EnrollCount)

	reviews := make([]ReviewItem, len(ov.Reviews))
	for i, r := range ov.Reviews {
		reviews[i] = ReviewItem{
			ID:       r.ID,
			UserName: userName(r.User),
			Rate:     r.Rate,
			Text:     r.Text,
			Created:  r.CreatedAt.Format(DateLayout),
		}
	}

	return EventDetail{
		EventSummary:       NewEventSummary(ov, assets),
		Description:        ov.Event.Description,
		ParticipantsNumber: capacity,
		Percent:            occupancy.Percent(capacity, enrolled),
		Occupancy:          occupancy.Classify(capacity, enrolled).String(),
		Reviews:            reviews,
	}
}

// AdminEventRow is one line of the admin event list.
type AdminEventRow struct {
	ID                 uint             `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	DateStart          time.Time        `json:"date_start"`
	ParticipantsNumber int              `json:"participants_number"`
	IsPrivate          bool             `json:"is_private"`
	Logo               *string          `json:"logo"`
	Category           *CategoryRef     `json:"category"`
	Features           []models.Feature `json:"features"`
	Rate               *float64         `json:"rate"`
	EnrollCount        int64            `json:"enroll_count"`
	PlacesLeft         int              `json:"places_left"`
	PlacesLeftDisplay  string           `json:"places_left_display"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func NewAdminEventRow(ov models.EventOverview) AdminEventRow {
	e := ov.Event
	enrolled := int(ov.EnrollCount)
	features := e.Features
	if features == nil {
		features = []models.Feature{}
	}
	return AdminEventRow{
		ID:                 e.ID,
		Title:              e.Title,
		Description:        e.Description,
		DateStart:          e.DateStart,
		ParticipantsNumber: e.ParticipantsNumber,
		IsPrivate:          e.IsPrivate,
		Logo:               e.Logo,
		Category:           categoryRef(e.Category),
		Features:           features,
		Rate:               ov.Rate,
		EnrollCount:        ov.EnrollCount,
		PlacesLeft:         occupancy.PlacesLeft(e.ParticipantsNumber, enrolled),
		PlacesLeftDisplay:  occupancy.Label(e.ParticipantsNumber, enrolled),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

type CategoryResponse struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	EventCount int64  `json:"event_count"`
}

func NewCategoryResponse(c models.CategoryOverview) CategoryResponse {
	return CategoryResponse{ID: c.Category.ID, Title: c.Category.Title, EventCount: c.EventCount}
}

type EnrollResponse struct {
	ID         uint      `json:"id"`
	UserID     *uint     `json:"user_id"`
	UserName   string    `json:"user_name"`
	EventID    *uint     `json:"event_id"`
	EventTitle string    `json:"event_title"`
	Created    time.Time `json:"created"`
}

func NewEnrollResponse(e models.Enroll) EnrollResponse {
	resp := EnrollResponse{
		ID:       e.ID,
		UserID:   e.UserID,
		UserName: userName(e.User),
		EventID:  e.EventID,
		Created:  e.CreatedAt,
	}
	if e.Event != nil {
		resp.EventTitle = e.Event.Title
	}
	return resp
}

type AdminReviewResponse struct {
	ID       uint      `json:"id"`
	UserID   uint      `json:"user_id"`
	UserName string    `json:"user_name"`
	EventID  uint      `json:"event_id"`
	Rate     int       `json:"rate"`
	Text     string    `json:"text"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

func NewAdminReviewResponse(r models.Review) AdminReviewResponse {
	return AdminReviewResponse{
		ID:       r.ID,
		UserID:   r.UserID,
		UserName: userName(r.User),
		EventID:  r.EventID,
		Rate:     r.Rate,
		Text:     r.Text,
		Created:  r.CreatedAt,
		Updated:  r.UpdatedAt,
	}
}

// NewReviewCreated echoes the submitted values back to the author.
func NewReviewCreated(r *models.Review, author, rate, text string) ReviewResponse {
	return ReviewResponse{
		OK:       true,
		Rate:     rate,
		Text:     text,
		Created:  r.CreatedAt.Format(DateLayout),
		UserName: author,
	}
}

func categoryRef(c *models.Category) *CategoryRef {
	if c == nil {
		return nil
	}
	return &CategoryRef{ID: c.ID, Title: c.Title}
}

func userName(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.DisplayName()
}
