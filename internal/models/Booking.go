// internal/models/booking.go
package models

import "time"

// GuestInfo is the denormalized guest snapshot carried on a booking.
type GuestInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Booking records a completed checkout. Price is the amount charged at
// booking time and is never re-derived from the room.
type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Guest         GuestInfo `gorm:"embedded;embeddedPrefix:guest_" json:"guest"`
	Host          HostInfo  `gorm:"embedded;embeddedPrefix:host_" json:"host"`
	RoomID        uint      `json:"roomId"`
	Title         string    `json:"title"`
	Image         string    `json:"image"`
	Location      string    `json:"location"`
	Date          time.Time `json:"date"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId"`
}
