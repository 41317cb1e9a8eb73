package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email" binding:"required,email"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	Role      string    `json:"role"` // "guest", "host", "admin"
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"` // first-seen time, stamped on insert
}
