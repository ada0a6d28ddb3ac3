package plans

import (
	"net/http"

	"healthrocket-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary List the plan catalog
// @Description Return the static plan catalog shown on the pricing page
// @Tags plans
// @Accept json
// @Produce json
// @Success 200 {array} models.Plan
// @Router /plans [get]
func GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, models.Plans)
}
