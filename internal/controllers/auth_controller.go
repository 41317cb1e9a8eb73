package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayvista_server/internal/middleware"
)

// AuthController issues and clears session cookies. Identity is asserted
// by the client (it has already authenticated the user upstream); the
// server only signs the supplied claims.
type AuthController struct {
	production bool
}

func NewAuthController(production bool) *AuthController {
	return &AuthController{production: production}
}

// IssueToken signs the posted claims object and sets it as the session cookie.
func (ctl *AuthController) IssueToken(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := middleware.GenerateToken(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	middleware.SetTokenCookie(c, token, ctl.production)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; revocation is client-side only.
func (ctl *AuthController) Logout(c *gin.Context) {
	middleware.ClearTokenCookie(c, ctl.production)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
