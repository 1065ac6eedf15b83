package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/openlistings/realestate-api/internal/config"
	"github.com/openlistings/realestate-api/internal/database"
	"github.com/openlistings/realestate-api/internal/services"
	"github.com/openlistings/realestate-api/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Fast-fail if the database host is not even listening (sqlite has no host)
	if cfg.DBType != "sqlite" {
		if err := utils.PingDatabase(cfg.DBHost, cfg.DBPort); err != nil {
			log.Fatalf("Database host unreachable: %v", err)
		}
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Perform health check
	result := services.HealthCheck(cfg, db)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
