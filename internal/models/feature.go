package models

// Feature is a tag attachable to any number of events.
type Feature struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:250;not null" json:"title"`
}
