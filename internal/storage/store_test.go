package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"

	"stayvista_server/internal/config"
	"stayvista_server/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "store.db")
	// TranslateError matches the production gorm config so driver errors
	// reach the store sentinels the same way they do against postgres.
	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return New(db)
}

func TestFindUserByEmail_NotFoundSentinel(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUser_DuplicateEmailMapsToErrDuplicate(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateUser(&models.User{Email: "dup@example.com", Timestamp: time.Now()}))
	err := s.CreateUser(&models.User{Email: "dup@example.com", Timestamp: time.Now()})
	assert.ErrorIs(t, err, ErrDuplicate, "unique violation on email surfaces the duplicate sentinel")
}

func TestUpdateUserStatus_TouchesOnlyStatus(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateUser(&models.User{
		Email: "u@example.com", Name: "Original", Role: "guest", Timestamp: time.Now(),
	}))

	modified, err := s.UpdateUserStatus("u@example.com", "Requested")
	require.NoError(t, err)
	assert.EqualValues(t, 1, modified)

	user, err := s.FindUserByEmail("u@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Requested", user.Status)
	assert.Equal(t, "Original", user.Name)
	assert.Equal(t, "guest", user.Role)
}

func TestUpdateUserStatus_NoMatch(t *testing.T) {
	s := newTestStore(t)

	modified, err := s.UpdateUserStatus("ghost@example.com", "Requested")
	require.NoError(t, err)
	assert.Zero(t, modified)
}

func TestListRooms_CategoryAndNullSentinel(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateRoom(&models.Room{Category: "Beach"}))
	require.NoError(t, s.CreateRoom(&models.Room{Category: "Cabin"}))

	all, err := s.ListRooms("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	unfiltered, err := s.ListRooms("null")
	require.NoError(t, err)
	assert.Len(t, unfiltered, 2)

	beach, err := s.ListRooms("Beach")
	require.NoError(t, err)
	assert.Len(t, beach, 1)
}

func TestRoomOwnershipFilters(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateRoom(&models.Room{Host: models.HostInfo{Email: "a@example.com"}}))
	require.NoError(t, s.CreateRoom(&models.Room{Host: models.HostInfo{Email: "a@example.com"}}))
	require.NoError(t, s.CreateRoom(&models.Room{Host: models.HostInfo{Email: "b@example.com"}}))

	rooms, err := s.ListRoomsByHost("a@example.com")
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	n, err := s.CountRoomsByHost("a@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	total, err := s.CountRooms()
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestSetRoomBooked_LastWriteWins(t *testing.T) {
	s := newTestStore(t)
	room := models.Room{}
	require.NoError(t, s.CreateRoom(&room))

	modified, err := s.SetRoomBooked(room.ID, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, modified)

	got, err := s.FindRoomByID(room.ID)
	require.NoError(t, err)
	assert.True(t, got.Booked)

	_, err = s.SetRoomBooked(room.ID, false)
	require.NoError(t, err)
	got, err = s.FindRoomByID(room.ID)
	require.NoError(t, err)
	assert.False(t, got.Booked)
}

func TestDeleteRoom_ReportsRowCount(t *testing.T) {
	s := newTestStore(t)
	room := models.Room{}
	require.NoError(t, s.CreateRoom(&room))

	deleted, err := s.DeleteRoom(room.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = s.DeleteRoom(room.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = s.FindRoomByID(room.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingLedger_ProjectionAndFilter(t *testing.T) {
	s := newTestStore(t)
	dates := []time.Time{
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateBooking(&models.Booking{
		Guest: models.GuestInfo{Email: "g@example.com"}, Host: models.HostInfo{Email: "h@example.com"},
		Date: dates[0], Price: 100,
	}))
	require.NoError(t, s.CreateBooking(&models.Booking{
		Guest: models.GuestInfo{Email: "g@example.com"}, Host: models.HostInfo{Email: "other@example.com"},
		Date: dates[1], Price: 200,
	}))

	all, err := s.BookingLedger(nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 100.0, all[0].Price)
	assert.Equal(t, 5, all[0].Date.Day())

	byHost, err := s.BookingLedger(map[string]interface{}{"host_email": "h@example.com"})
	require.NoError(t, err)
	require.Len(t, byHost, 1)
	assert.Equal(t, 100.0, byHost[0].Price)

	byGuest, err := s.BookingLedger(map[string]interface{}{"guest_email": "g@example.com"})
	require.NoError(t, err)
	assert.Len(t, byGuest, 2)
}
