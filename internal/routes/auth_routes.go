package routes

import (
	"github.com/gin-gonic/gin"

	"stayvista_server/internal/controllers"
)

func AuthRoutes(r *gin.Engine, production bool) {
	ctl := controllers.NewAuthController(production)

	r.POST("/jwt", ctl.IssueToken)
	r.GET("/logout", ctl.Logout)
}
