package routes

import (
	"healthrocket-backend/handlers/dashboard"
	"healthrocket-backend/middleware"

	"github.com/gin-gonic/gin"
)

func DashboardRoutes(r *gin.Engine) {
	dashboardRoutes := r.Group("/dashboard")
	dashboardRoutes.Use(middleware.JWTAuth())
	{
		dashboardRoutes.GET("/billing", dashboard.GetBillingSummary)
		dashboardRoutes.GET("/metrics", middleware.AdminAuth(), dashboard.GetMetrics)
	}
}
