package stripe

import (
	"net/http"
	"time"

	"healthrocket-backend/db"
	"healthrocket-backend/models"
	"healthrocket-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v82"
	session "github.com/stripe/stripe-go/v82/checkout/session"
	stripeSubscription "github.com/stripe/stripe-go/v82/subscription"
	"gorm.io/gorm/clause"
)

type ConfirmInput struct {
	SessionID string `json:"sessionId"`
}

type confirmResult struct {
	PaymentStatus  string
	UserID         string
	CustomerID     string
	SubscriptionID string
}

// ConfirmPayment pulls the authoritative post-payment state for a checkout
// session from Stripe and writes it into the local store.
// @Summary Confirm a completed checkout session
// @Description Retrieves the checkout session and its subscription from Stripe, upserts the local subscription row and promotes the user to the Pro Plan. Safe to call multiple times with the same session ID.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param input body ConfirmInput true "Checkout session ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success, paymentStatus, userId, customerId, subscriptionId"
// @Failure 400 {object} map[string]string "error: validation, provider or persistence error"
// @Router /subscriptions/confirm [post]
func ConfirmPayment(c *gin.Context) {
	var input ConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, nil, wrapBillingError(ErrValidation, "Invalid request body", err))
		return
	}
	if input.SessionID == "" {
		respondError(c, nil, newBillingError(ErrValidation, "Session ID is required"))
		return
	}

	res, berr := reconcileCheckoutSession(input.SessionID)
	if berr != nil {
		respondError(c, nil, berr)
		return
	}

	utils.LogSuccessWithUser(res.UserID, "Checkout session confirmed")
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"paymentStatus":  res.PaymentStatus,
		"userId":         res.UserID,
		"customerId":     res.CustomerID,
		"subscriptionId": res.SubscriptionID,
	})
}

// reconcileCheckoutSession is the shared confirm routine, invoked by the
// client poll endpoint and by the checkout.session.completed webhook. Both
// can race for the same session; the unique (user_id, stripe_customer_id)
// index plus ON CONFLICT on the insert path guarantees a single row.
func reconcileCheckoutSession(sessionID string) (*confirmResult, *BillingError) {
	s, err := session.Get(sessionID, nil)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, wrapBillingError(ErrNotFound, "Checkout session not found", err)
		}
		return nil, wrapBillingError(ErrPaymentProvider, "Error retrieving the checkout session", err)
	}

	userID := s.Metadata["userId"]
	if userID == "" {
		return nil, newBillingError(ErrIntegrity, "Invalid session or missing user metadata")
	}
	if _, err := uuid.Parse(userID); err != nil {
		// a session not created by this system carries no usable correlation
		return nil, wrapBillingError(ErrIntegrity, "Invalid session or missing user metadata", err)
	}

	if s.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil, newBillingError(ErrPaymentIncomplete, "Payment not completed")
	}

	if s.Customer == nil || s.Subscription == nil {
		return nil, newBillingError(ErrIntegrity, "Session has no customer or subscription attached")
	}
	customerID := s.Customer.ID

	sub, err := stripeSubscription.Get(s.Subscription.ID, nil)
	if err != nil {
		return nil, wrapBillingError(ErrPaymentProvider, "Error retrieving the subscription", err)
	}
	if len(sub.Items.Data) == 0 {
		return nil, newBillingError(ErrIntegrity, "Subscription has no items")
	}
	item := sub.Items.Data[0]

	record := models.Subscription{
		UserID:               userID,
		StripeCustomerId:     customerID,
		StripeSubscriptionId: sub.ID,
		PlanID:               item.Price.ID,
		Status:               string(sub.Status),
		CurrentPeriodStart:   time.Unix(item.CurrentPeriodStart, 0),
		CurrentPeriodEnd:     time.Unix(item.CurrentPeriodEnd, 0),
		CancelAtPeriodEnd:    sub.CancelAtPeriodEnd,
	}

	var existing models.Subscription
	lookupErr := db.DB.Where("user_id = ? AND stripe_customer_id = ?", userID, customerID).
		First(&existing).Error
	if lookupErr != nil {
		// first activation, or the lookup itself failed: insert, and let a
		// concurrent confirm for the same pair degrade into an update
		err = db.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "stripe_customer_id"}},
			DoUpdates: clause.AssignmentColumns(models.SubscriptionMutableColumns),
		}).Create(&record).Error
		if err != nil {
			return nil, wrapBillingError(ErrPersistence, "Error saving the subscription", err)
		}
	} else {
		// renewal or repeat confirmation: only the mutable fields move
		err = db.DB.Model(&models.Subscription{}).
			Where("user_id = ? AND stripe_customer_id = ?", userID, customerID).
			Updates(map[string]interface{}{
				"stripe_subscription_id": record.StripeSubscriptionId,
				"plan_id":                record.PlanID,
				"status":                 record.Status,
				"current_period_start":   record.CurrentPeriodStart,
				"current_period_end":     record.CurrentPeriodEnd,
				"cancel_at_period_end":   record.CancelAtPeriodEnd,
			}).Error
		if err != nil {
			return nil, wrapBillingError(ErrPersistence, "Error updating the subscription", err)
		}
	}

	// subscription row written, user row still pending: no cross-system
	// transaction exists, so this window is logged and the failure below
	// is reported instead of rolled back
	utils.LogInfoWithUser(userID, "Subscription recorded, updating user plan")

	err = db.DB.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"plan":                    models.ProPlan,
			"plan_status":             models.PlanStatusActive,
			"subscription_start_date": record.CurrentPeriodStart,
			"subscription_end_date":   record.CurrentPeriodEnd,
		}).Error
	if err != nil {
		return nil, wrapBillingError(ErrPersistence, "Subscription recorded but user plan update failed", err)
	}

	return &confirmResult{
		PaymentStatus:  string(s.PaymentStatus),
		UserID:         userID,
		CustomerID:     customerID,
		SubscriptionID: sub.ID,
	}, nil
}
