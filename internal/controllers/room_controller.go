package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayvista_server/internal/models"
	"stayvista_server/internal/storage"
)

type RoomController struct {
	store *storage.Store
}

func NewRoomController(store *storage.Store) *RoomController {
	return &RoomController{store: store}
}

// parseID converts a numeric path parameter; a malformed id is a 400.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// CreateRoom saves a listing as supplied by the host.
func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.store.CreateRoom(&room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": room.ID})
}

// ListRooms returns all rooms, optionally filtered by ?category=.
func (ctl *RoomController) ListRooms(c *gin.Context) {
	category := c.Query("category")
	rooms, err := ctl.store.ListRooms(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// MyListings returns the rooms owned by the host email in the path.
func (ctl *RoomController) MyListings(c *gin.Context) {
	email := c.Param("email")
	rooms, err := ctl.store.ListRoomsByHost(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom returns a single room by id.
func (ctl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := ctl.store.FindRoomByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom removes a room by id. Any host can delete any room here;
// the route only checks the host role, not ownership of this room.
func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := ctl.store.DeleteRoom(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}

// UpdateRoom merge-patches a listing by id; fields absent from the body
// keep their stored values.
func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := ctl.store.FindRoomByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch room"})
		return
	}

	var input struct {
		Title       *string  `json:"title"`
		Location    *string  `json:"location"`
		Category    *string  `json:"category"`
		Price       *float64 `json:"price"`
		TotalGuests *int     `json:"total_guest"`
		Bedrooms    *int     `json:"bedrooms"`
		Bathrooms   *int     `json:"bathrooms"`
		Description *string  `json:"description"`
		Image       *string  `json:"image"`
		From        *string  `json:"from"`
		To          *string  `json:"to"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		room.Title = *input.Title
	}
	if input.Location != nil {
		room.Location = *input.Location
	}
	if input.Category != nil {
		room.Category = *input.Category
	}
	if input.Price != nil {
		room.Price = *input.Price
	}
	if input.TotalGuests != nil {
		room.TotalGuests = *input.TotalGuests
	}
	if input.Bedrooms != nil {
		room.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		room.Bathrooms = *input.Bathrooms
	}
	if input.Description != nil {
		room.Description = *input.Description
	}
	if input.Image != nil {
		room.Image = *input.Image
	}
	if input.From != nil {
		room.From = *input.From
	}
	if input.To != nil {
		room.To = *input.To
	}

	if err := ctl.store.SaveRoom(&room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "modifiedCount": 1})
}

// SetRoomStatus sets the booked flag. Any authenticated caller may flip
// any room; ownership is not checked on this path.
func (ctl *RoomController) SetRoomStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input struct {
		Status bool `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modified, err := ctl.store.SetRoomBooked(id, input.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update room status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "modifiedCount": modified})
}
