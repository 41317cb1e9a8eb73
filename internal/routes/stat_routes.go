package routes

import (
	"github.com/gin-gonic/gin"

	"stayvista_server/internal/controllers"
	"stayvista_server/internal/middleware"
	"stayvista_server/internal/storage"
)

func StatRoutes(r *gin.Engine, store *storage.Store) {
	ctl := controllers.NewStatController(store)

	r.GET("/admin-stat", middleware.RequireAuth(), middleware.RequireRole(store, "admin"), ctl.AdminStat)
	r.GET("/host-stat", middleware.RequireAuth(), middleware.RequireRole(store, "host"), ctl.HostStat)
	r.GET("/guest-stat", middleware.RequireAuth(), ctl.GuestStat)
}
