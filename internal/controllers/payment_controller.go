package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"stayvista_server/internal/gateway"
)

type PaymentController struct {
	payments gateway.PaymentIntenter
}

func NewPaymentController(payments gateway.PaymentIntenter) *PaymentController {
	return &PaymentController{payments: payments}
}

// CreatePaymentIntent converts the price to minor units and asks the
// gateway for a client secret. A missing or sub-cent price gets an empty
// 400; the client retries checkout with a real amount.
func (ctl *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	amountCents := int64(math.Round(input.Price * 100))
	if input.Price == 0 || amountCents < 1 {
		c.Status(http.StatusBadRequest)
		return
	}

	clientSecret, err := ctl.payments.CreateIntent(amountCents)
	if err != nil {
		logrus.WithError(err).Error("payment intent creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"client_secret": clientSecret})
}
