package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stayvista_server/internal/models"
	"stayvista_server/internal/storage"
)

type UserController struct {
	store *storage.Store
}

func NewUserController(store *storage.Store) *UserController {
	return &UserController{store: store}
}

// UpsertUser saves a user on first login. An existing user posting
// status "Requested" gets only the status updated (a role-change
// request); any other repeat call returns the stored record unchanged.
func (ctl *UserController) UpsertUser(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := ctl.store.FindUserByEmail(input.Email)
	if err == nil {
		if input.Status == "Requested" {
			// existing user asking for a role change
			modified, err := ctl.store.UpdateUserStatus(input.Email, input.Status)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user status"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"acknowledged": true, "modifiedCount": modified})
			return
		}
		// existing user logging in again
		c.JSON(http.StatusOK, existing)
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up user"})
		return
	}

	// save user for the first time
	input.Timestamp = time.Now()
	if err := ctl.store.CreateUser(&input); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": input.ID})
}

// GetUser looks a user up by email. Absence is not an error to the
// client; it gets a null body, matching the lookup-before-login flow.
func (ctl *UserController) GetUser(c *gin.Context) {
	email := c.Param("email")
	user, err := ctl.store.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers returns every user. Admin only (enforced in the route table).
func (ctl *UserController) ListUsers(c *gin.Context) {
	users, err := ctl.store.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser merge-patches a user by email and stamps the update time.
func (ctl *UserController) UpdateUser(c *gin.Context) {
	email := c.Param("email")

	user, err := ctl.store.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up user"})
		return
	}

	var input struct {
		Name   *string `json:"name"`
		Photo  *string `json:"photo"`
		Role   *string `json:"role"`
		Status *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Photo != nil {
		user.Photo = *input.Photo
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}

	if err := ctl.store.SaveUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "modifiedCount": 1})
}
