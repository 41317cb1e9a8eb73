package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayvista_server/internal/storage"
)

// StatController rolls bookings up into the dashboard numbers. Chart rows
// keep the underlying query order; nothing is deduplicated or sorted.
type StatController struct {
	store *storage.Store
}

func NewStatController(store *storage.Store) *StatController {
	return &StatController{store: store}
}

// chartData buckets each booking as ["day/month", price] under a fixed
// header row, the shape the dashboard chart consumes directly.
func chartData(entries []storage.LedgerEntry) [][]interface{} {
	chart := [][]interface{}{{"Days", "Sales"}}
	for _, e := range entries {
		label := fmt.Sprintf("%d/%d", e.Date.Day(), int(e.Date.Month()))
		chart = append(chart, []interface{}{label, e.Price})
	}
	return chart
}

func totalSales(entries []storage.LedgerEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Price
	}
	return total
}

// AdminStat reports marketplace-wide totals over every booking.
func (ctl *StatController) AdminStat(c *gin.Context) {
	entries, err := ctl.store.BookingLedger(nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}

	totalUsers, err := ctl.store.CountUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count users"})
		return
	}
	totalRooms, err := ctl.store.CountRooms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count rooms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":    totalUsers,
		"totalRooms":    totalRooms,
		"totalBookings": len(entries),
		"totalSales":    totalSales(entries),
		"chartData":     chartData(entries),
	})
}

// HostStat reports totals over the caller's rooms, keyed by the token
// email rather than a path parameter.
func (ctl *StatController) HostStat(c *gin.Context) {
	email := c.GetString("email")

	entries, err := ctl.store.BookingLedger(map[string]interface{}{"host_email": email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}

	totalRooms, err := ctl.store.CountRoomsByHost(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count rooms"})
		return
	}

	user, err := ctl.store.FindUserByEmail(email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up host"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRooms":    totalRooms,
		"totalBookings": len(entries),
		"totalSales":    totalSales(entries),
		"hostSince":     user.Timestamp,
		"chartData":     chartData(entries),
	})
}

// GuestStat reports totals over the caller's own bookings.
func (ctl *StatController) GuestStat(c *gin.Context) {
	email := c.GetString("email")

	entries, err := ctl.store.BookingLedger(map[string]interface{}{"guest_email": email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}

	user, err := ctl.store.FindUserByEmail(email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up guest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBookings": len(entries),
		"totalSales":    totalSales(entries),
		"guestSince":    user.Timestamp,
		"chartData":     chartData(entries),
	})
}
