package routes

import (
	"healthrocket-backend/handlers/stripe"
	"healthrocket-backend/middleware"

	"github.com/gin-gonic/gin"
)

func StripeRoutes(r *gin.Engine) {
	subscriptionRoutes := r.Group("/subscriptions")
	subscriptionRoutes.Use(middleware.JWTAuth())
	{
		subscriptionRoutes.POST("/checkout", stripe.CreateCheckoutSession)
		subscriptionRoutes.POST("/confirm", stripe.ConfirmPayment)
		subscriptionRoutes.DELETE("", stripe.CancelSubscription)
	}
	r.POST("/stripe/webhook", stripe.WebhookHandler)
}
