package routes

import (
	"github.com/gin-gonic/gin"

	"stayvista_server/internal/controllers"
	"stayvista_server/internal/middleware"
	"stayvista_server/internal/storage"
)

func UserRoutes(r *gin.Engine, store *storage.Store) {
	ctl := controllers.NewUserController(store)

	r.PUT("/user", ctl.UpsertUser)
	r.GET("/user/:email", ctl.GetUser)
	r.GET("/users", middleware.RequireAuth(), middleware.RequireRole(store, "admin"), ctl.ListUsers)
	r.PATCH("/user/update/:email", ctl.UpdateUser)
}
