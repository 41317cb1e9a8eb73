package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"stayvista_server/internal/gateway"
	"stayvista_server/internal/models"
	"stayvista_server/internal/storage"
)

type BookingController struct {
	store  *storage.Store
	mailer gateway.Mailer
}

func NewBookingController(store *storage.Store, mailer gateway.Mailer) *BookingController {
	return &BookingController{store: store, mailer: mailer}
}

// CreateBooking persists a booking, then dispatches the guest and host
// notifications on a goroutine. The booking is already committed before
// either send is attempted; a failed send is logged and never rolls the
// booking back or changes the response.
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.store.CreateBooking(&booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create booking"})
		return
	}

	go ctl.sendBookingNotifications(booking)

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": booking.ID})
}

// sendBookingNotifications attempts both sends regardless of the outcome
// of the first.
func (ctl *BookingController) sendBookingNotifications(booking models.Booking) {
	if err := ctl.mailer.Send(
		booking.Guest.Email,
		"Booking Successful",
		fmt.Sprintf("You've successfully booked a room through StayVista. Transaction Id: %s", booking.TransactionID),
	); err != nil {
		logrus.WithError(err).WithField("to", booking.Guest.Email).Error("guest booking confirmation failed")
	}

	if err := ctl.mailer.Send(
		booking.Host.Email,
		"Your room got Booked",
		fmt.Sprintf("Get ready to welcome %s.", booking.Guest.Name),
	); err != nil {
		logrus.WithError(err).WithField("to", booking.Host.Email).Error("host booking notification failed")
	}
}

// MyBookings returns the bookings made by the guest email in the path.
func (ctl *BookingController) MyBookings(c *gin.Context) {
	email := c.Param("email")
	bookings, err := ctl.store.ListBookingsByGuest(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ManageBookings returns the bookings against the host email in the path.
func (ctl *BookingController) ManageBookings(c *gin.Context) {
	email := c.Param("email")
	bookings, err := ctl.store.ListBookingsByHost(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking removes a booking by id. Ownership is not checked; any
// authenticated caller with the id may delete.
func (ctl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := ctl.store.DeleteBooking(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}
