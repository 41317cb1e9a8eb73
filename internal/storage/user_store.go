package storage

import (
	"time"

	"stayvista_server/internal/models"
)

// FindUserByEmail returns the user identified by email or ErrNotFound.
func (s *Store) FindUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// ListUsers returns the full users collection.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// CreateUser inserts a new user record.
func (s *Store) CreateUser(user *models.User) error {
	return translate(s.db.Create(user).Error)
}

// UpdateUserStatus sets only the status field of the user matched by email
// and reports how many rows changed.
func (s *Store) UpdateUserStatus(email, status string) (int64, error) {
	res := s.db.Model(&models.User{}).Where("email = ?", email).Update("status", status)
	return res.RowsAffected, translate(res.Error)
}

// SaveUser persists every field of an already-loaded user record and
// stamps the update time.
func (s *Store) SaveUser(user *models.User) error {
	user.Timestamp = time.Now()
	return translate(s.db.Save(user).Error)
}

// CountUsers reports the size of the users collection.
func (s *Store) CountUsers() (int64, error) {
	var n int64
	if err := s.db.Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}
