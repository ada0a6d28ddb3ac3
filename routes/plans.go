package routes

import (
	"healthrocket-backend/handlers/plans"

	"github.com/gin-gonic/gin"
)

func PlansRoutes(r *gin.Engine) {
	r.GET("/plans", plans.GetPlans)
}
