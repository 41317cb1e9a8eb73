package routes

import (
	"github.com/gin-gonic/gin"

	"stayvista_server/internal/controllers"
	"stayvista_server/internal/gateway"
	"stayvista_server/internal/middleware"
)

func PaymentRoutes(r *gin.Engine, payments gateway.PaymentIntenter) {
	ctl := controllers.NewPaymentController(payments)

	r.POST("/create-payment-intent", middleware.RequireAuth(), ctl.CreatePaymentIntent)
}
