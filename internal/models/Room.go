// internal/models/room.go
package models

// HostInfo is the denormalized owner snapshot embedded in rooms and bookings.
// Ownership filters compare host_email by string equality; there is no
// foreign-key constraint back to the users table.
type HostInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Room is a listing created by a host. Booked flips via the status endpoint
// with last-write-wins semantics.
type Room struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Host        HostInfo `gorm:"embedded;embeddedPrefix:host_" json:"host"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	TotalGuests int      `json:"total_guest"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Booked      bool     `json:"booked"`
}
