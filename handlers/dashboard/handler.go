package dashboard

import (
	"errors"
	"net/http"

	"healthrocket-backend/db"
	"healthrocket-backend/models"
	"healthrocket-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Billing summary for the connected user
// @Description Return the caller's plan fields plus the mirrored subscription row, if any
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: plan, planStatus, subscription"
// @Failure 401 {object} utils.Response "error: Unauthorized"
// @Failure 404 {object} utils.Response "error: User not found"
// @Router /dashboard/billing [get]
func GetBillingSummary(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in GetBillingSummary")
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	summary := gin.H{
		"plan":                  user.Plan,
		"planStatus":            user.PlanStatus,
		"subscriptionStartDate": user.SubscriptionStartDate,
		"subscriptionEndDate":   user.SubscriptionEndDate,
		"subscription":          nil,
	}

	var sub models.Subscription
	err := db.DB.First(&sub, "user_id = ?", userID).Error
	if err == nil {
		summary["subscription"] = sub
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogErrorWithUser(userID, err, "Error fetching the subscription in GetBillingSummary")
		utils.SendError(c, http.StatusInternalServerError, "Error fetching the subscription")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Billing summary retrieved", summary)
}

// @Summary Platform billing metrics
// @Description Return user and subscription totals (admin only)
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response "data: totalUsers, payingUsers, activeSubscriptions"
// @Failure 401 {object} utils.Response "error: Unauthorized"
// @Failure 403 {object} utils.Response "error: admin role required"
// @Router /dashboard/metrics [get]
func GetMetrics(c *gin.Context) {
	var totalUsers int64
	if err := db.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error counting users")
		return
	}

	var payingUsers int64
	if err := db.DB.Model(&models.User{}).Where("plan <> ?", models.FreePlan).
		Count(&payingUsers).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error counting paying users")
		return
	}

	var activeSubscriptions int64
	if err := db.DB.Model(&models.Subscription{}).Where("status IN ?", []string{"trialing", "active"}).
		Count(&activeSubscriptions).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error counting subscriptions")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Metrics computed", gin.H{
		"totalUsers":          totalUsers,
		"payingUsers":         payingUsers,
		"activeSubscriptions": activeSubscriptions,
	})
}
