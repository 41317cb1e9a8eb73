package storage

import (
	"time"

	"stayvista_server/internal/models"
)

// LedgerEntry is the (date, price) projection of a booking used by the
// statistics endpoints.
type LedgerEntry struct {
	Date  time.Time
	Price float64
}

// CreateBooking inserts a booking record.
func (s *Store) CreateBooking(booking *models.Booking) error {
	return translate(s.db.Create(booking).Error)
}

// ListBookingsByGuest returns the bookings made by the given guest email.
func (s *Store) ListBookingsByGuest(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("guest_email = ?", email).Find(&bookings).Error; err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

// ListBookingsByHost returns the bookings against the given host's rooms.
func (s *Store) ListBookingsByHost(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("host_email = ?", email).Find(&bookings).Error; err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

// DeleteBooking removes a booking by id and reports how many rows went away.
func (s *Store) DeleteBooking(id uint) (int64, error) {
	res := s.db.Delete(&models.Booking{}, id)
	return res.RowsAffected, translate(res.Error)
}

// BookingLedger projects bookings to (date, price) rows, optionally
// restricted by an exact-match column filter, preserving query order.
func (s *Store) BookingLedger(filter map[string]interface{}) ([]LedgerEntry, error) {
	var entries []LedgerEntry
	q := s.db.Model(&models.Booking{}).Select("date", "price")
	if len(filter) > 0 {
		q = q.Where(filter)
	}
	if err := q.Scan(&entries).Error; err != nil {
		return nil, translate(err)
	}
	return entries, nil
}
