package storage

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound reports a lookup that matched no document.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate reports a unique-constraint violation on insert.
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the single adapter over the users, rooms and bookings
// collections. It is constructed in main and injected into the
// controllers and middleware that need it.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// translate maps driver errors onto the store sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	// guards connections opened over lib/pq; the pgx-based driver
	// reports the same violation as gorm.ErrDuplicatedKey below
	if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
