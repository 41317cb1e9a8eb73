package routes

import (
	"github.com/gin-gonic/gin"

	"stayvista_server/internal/controllers"
	"stayvista_server/internal/middleware"
	"stayvista_server/internal/storage"
)

func RoomRoutes(r *gin.Engine, store *storage.Store) {
	ctl := controllers.NewRoomController(store)
	requireHost := middleware.RequireRole(store, "host")

	r.POST("/room", middleware.RequireAuth(), requireHost, ctl.CreateRoom)
	r.GET("/rooms", ctl.ListRooms)
	r.GET("/my-listings/:email", middleware.RequireAuth(), requireHost, ctl.MyListings)
	r.GET("/room/:id", ctl.GetRoom)
	r.DELETE("/room/:id", middleware.RequireAuth(), requireHost, ctl.DeleteRoom)
	r.PUT("/room/update/:id", middleware.RequireAuth(), requireHost, ctl.UpdateRoom)
	r.PATCH("/room/status/:id", middleware.RequireAuth(), ctl.SetRoomStatus)
}
