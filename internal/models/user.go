package models

import "time"

// User mirrors an account of the external identity provider.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	FirstName string    `gorm:"size:150" json:"first_name"`
	LastName  string    `gorm:"size:150" json:"last_name"`
	IsStaff   bool      `gorm:"not null" json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) DisplayName() string {
	return u.Username
}

// All lists every model in migration order.
func All() []any {
	return []any{&User{}, &Category{}, &Feature{}, &Event{}, &Enroll{}, &Review{}}
}
