package stripe

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"healthrocket-backend/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// WebhookHandler receives Stripe events. checkout.session.completed runs
// the same reconcile routine as the confirm endpoint, so a webhook and a
// client poll for one session converge on a single subscription row.
func WebhookHandler(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not read the request body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, secret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		handleCheckoutSessionCompleted(c, event)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
	}
}

func handleCheckoutSessionCompleted(c *gin.Context, event stripe.Event) {
	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing CheckoutSession"})
		return
	}

	res, berr := reconcileCheckoutSession(s.ID)
	if berr != nil {
		if berr.Kind == ErrPaymentIncomplete {
			// async payment method still settling; the paid event follows
			c.JSON(http.StatusOK, gin.H{"message": "Payment not settled yet"})
			return
		}
		respondError(c, nil, berr)
		return
	}

	utils.LogSuccessWithUser(res.UserID, "Subscription reconciled via checkout.session.completed")
	c.JSON(http.StatusOK, gin.H{"message": "Subscription reconciled"})
}
