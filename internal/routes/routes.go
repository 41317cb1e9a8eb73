package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"stayvista_server/internal/gateway"
	"stayvista_server/internal/middleware"
	"stayvista_server/internal/storage"
)

// SetupRouter wires every route group onto one engine. The store and
// gateways are injected here and threaded down to the controllers; no
// package holds them globally.
func SetupRouter(store *storage.Store, payments gateway.PaymentIntenter, mailer gateway.Mailer, production bool) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	// liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from StayVista Server..")
	})

	AuthRoutes(r, production)
	UserRoutes(r, store)
	RoomRoutes(r, store)
	PaymentRoutes(r, payments)
	BookingRoutes(r, store, mailer)
	StatRoutes(r, store)

	return r
}
