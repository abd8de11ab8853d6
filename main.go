package main

import (
	"context"
	"log"

	"frydays/app"
	"frydays/config"
	_ "frydays/docs"

	"github.com/gin-gonic/gin"
)

// @title Fryday's API
// @version 1.0
// @description Menu, promotions, cart and contact API for the Fryday's ordering site.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	config.LoadConfig()

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	application, err := app.New(context.Background(), config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := application.Router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
