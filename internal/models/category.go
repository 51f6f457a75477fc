package models

type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:90;not null" json:"title"`
}

type CategoryOverview struct {
	Category   Category
	EventCount int64
}
