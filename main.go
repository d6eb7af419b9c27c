package main

import (
	"log"

	"servicoperto-backend/config"
	"servicoperto-backend/db"
	_ "servicoperto-backend/docs"
	"servicoperto-backend/routes"
	"servicoperto-backend/storage"
	"servicoperto-backend/utils"
	"servicoperto-backend/verification"

	"github.com/gin-gonic/gin"
)

// @title ServicoPerto API
// @version 1.0
// @description Marketplace backend connecting local service providers with customers.
// @host localhost:3000
// @BasePath /
func main() {

	gin.SetMode(gin.ReleaseMode)

	cfg := config.Load()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Error connecting to the database:", err)
	}
	defer db.Close(database)

	ledger := storage.NewLeadLedger(storage.DefaultLeadsFile)
	verifiers := verification.NewRegistry(cfg.GoogleVerifyURL, cfg.AppleVerifyURL)

	r := routes.SetupRouter(database, ledger, verifiers)

	utils.LogInfo("Server running on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
