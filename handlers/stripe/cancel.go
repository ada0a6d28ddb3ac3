package stripe

import (
	"net/http"

	"healthrocket-backend/db"
	"healthrocket-backend/models"
	"healthrocket-backend/utils"

	"github.com/gin-gonic/gin"
	stripeSubscription "github.com/stripe/stripe-go/v82/subscription"
)

// CancelSubscription terminates the caller's subscription immediately at
// Stripe, removes the local row and reverts the user to the free tier.
// @Summary Cancel the caller's subscription
// @Description Cancels the Stripe subscription immediately (not at period end), deletes the local subscription row and reverts the user's plan to the Free Plan.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool "success: true"
// @Failure 400 {object} map[string]string "error: no subscription, provider or persistence error"
// @Router /subscriptions [delete]
func CancelSubscription(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		respondError(c, nil, newBillingError(ErrAuthentication, "User not authenticated"))
		return
	}

	var sub models.Subscription
	if err := db.DB.First(&sub, "user_id = ?", userID).Error; err != nil {
		respondError(c, userID, wrapBillingError(ErrNotFound, "No active subscription found", err))
		return
	}
	if sub.StripeSubscriptionId == "" {
		respondError(c, userID, newBillingError(ErrNotFound, "No active subscription found"))
		return
	}

	// no local writes before Stripe confirms the cancellation
	if _, err := stripeSubscription.Cancel(sub.StripeSubscriptionId, nil); err != nil {
		respondError(c, userID, wrapBillingError(ErrPaymentProvider, "Error canceling the Stripe subscription", err))
		return
	}

	// canceled at Stripe, local state still pending
	utils.LogInfoWithUser(userID, "Stripe subscription canceled, removing local record")

	if err := db.DB.Where("user_id = ?", userID).Delete(&models.Subscription{}).Error; err != nil {
		respondError(c, userID, wrapBillingError(ErrPersistence, "Subscription canceled at Stripe but local record deletion failed", err))
		return
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("plan", models.FreePlan).Error; err != nil {
		respondError(c, userID, wrapBillingError(ErrPersistence, "Subscription removed but user plan revert failed", err))
		return
	}

	utils.LogSuccessWithUser(userID, "Subscription canceled")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
