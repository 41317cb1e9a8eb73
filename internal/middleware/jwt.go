package middleware

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// TokenValidity is deliberately long: the client treats the cookie as a
// durable session and logout only clears it client-side. A captured token
// therefore stays valid until expiry; stateless revocation is an accepted
// risk, not something the server tracks.
const TokenValidity = 365 * 24 * time.Hour

func jwtSecret() []byte {
	if val := os.Getenv("ACCESS_TOKEN_SECRET"); val != "" {
		return []byte(val)
	}
	return []byte("supersecret") // fallback
}

// GenerateToken signs the caller-supplied claims (minimally an email) with
// an expiry a year out. The role is never embedded; the guard re-reads it
// from the store on every request.
func GenerateToken(claims map[string]interface{}) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["exp"] = time.Now().Add(TokenValidity).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return token.SignedString(jwtSecret())
}

// SetTokenCookie attaches the session token as an http-only cookie.
func SetTokenCookie(c *gin.Context, token string, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(CookieName, token, int(TokenValidity.Seconds()), "/", "", production, true)
}

// ClearTokenCookie expires the session cookie (logout).
func ClearTokenCookie(c *gin.Context, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(CookieName, "", -1, "/", "", production, true)
}

// RequireAuth ensures a valid session cookie is present and stores the
// decoded principal email in the context for downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		email, _ := claims["email"].(string)
		c.Set("email", email)
		c.Set("claims", claims)

		c.Next()
	}
}
