package routes

import (
	"github.com/gin-gonic/gin"

	"stayvista_server/internal/controllers"
	"stayvista_server/internal/gateway"
	"stayvista_server/internal/middleware"
	"stayvista_server/internal/storage"
)

func BookingRoutes(r *gin.Engine, store *storage.Store, mailer gateway.Mailer) {
	ctl := controllers.NewBookingController(store, mailer)

	r.POST("/booking", middleware.RequireAuth(), ctl.CreateBooking)
	r.GET("/my-bookings/:email", middleware.RequireAuth(), ctl.MyBookings)
	r.DELETE("/booking/:id", middleware.RequireAuth(), ctl.DeleteBooking)
	r.GET("/manage-bookings/:email", middleware.RequireAuth(), middleware.RequireRole(store, "host"), ctl.ManageBookings)
}
