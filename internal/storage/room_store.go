package storage

import (
	"stayvista_server/internal/models"
)

// CreateRoom inserts a room listing as supplied.
func (s *Store) CreateRoom(room *models.Room) error {
	return translate(s.db.Create(room).Error)
}

// ListRooms returns all rooms, optionally filtered by exact category.
// The literal string "null" means no filter; the client sends it when the
// category picker is cleared.
func (s *Store) ListRooms(category string) ([]models.Room, error) {
	var rooms []models.Room
	q := s.db
	if category != "" && category != "null" {
		q = q.Where("category = ?", category)
	}
	if err := q.Find(&rooms).Error; err != nil {
		return nil, translate(err)
	}
	return rooms, nil
}

// ListRoomsByHost returns the rooms owned by the given host email.
func (s *Store) ListRoomsByHost(email string) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Where("host_email = ?", email).Find(&rooms).Error; err != nil {
		return nil, translate(err)
	}
	return rooms, nil
}

// FindRoomByID returns a single room or ErrNotFound.
func (s *Store) FindRoomByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		return models.Room{}, translate(err)
	}
	return room, nil
}

// SaveRoom persists every field of an already-loaded room record.
func (s *Store) SaveRoom(room *models.Room) error {
	return translate(s.db.Save(room).Error)
}

// SetRoomBooked flips the booked flag. Last write wins; no ownership or
// state-transition guard runs at this layer.
func (s *Store) SetRoomBooked(id uint, booked bool) (int64, error) {
	res := s.db.Model(&models.Room{}).Where("id = ?", id).Update("booked", booked)
	return res.RowsAffected, translate(res.Error)
}

// DeleteRoom removes a room by id and reports how many rows went away.
func (s *Store) DeleteRoom(id uint) (int64, error) {
	res := s.db.Delete(&models.Room{}, id)
	return res.RowsAffected, translate(res.Error)
}

// CountRooms reports the size of the rooms collection.
func (s *Store) CountRooms() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Room{}).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// CountRoomsByHost reports how many rooms the given host owns.
func (s *Store) CountRoomsByHost(email string) (int64, error) {
	var n int64
	if err := s.db.Model(&models.Room{}).Where("host_email = ?", email).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}
