package models

import "time"

// User is a registered account. Accounts are created once and never
// updated or deleted; presenting a known email is the whole login story.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:190;index;not null" json:"email"`
	Phone     *string   `gorm:"size:30" json:"phone"`
	Location  *string   `gorm:"size:120" json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
