package main

import (
	"log"

	"healthrocket-backend/db"
	"healthrocket-backend/handlers/stripe"
	"healthrocket-backend/routes"
	"healthrocket-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Health Rocket API
// @version 1.0
// @description Backend API for Health Rocket: subscription billing, plan catalog, Cosmo chat and dashboard
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = utils.LogWriter()

	db.InitDB()

	stripe.Init()

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
