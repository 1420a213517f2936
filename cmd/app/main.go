package main

import (
	"log"

	"FoodRescue-Backend/cmd/config"
	migration "FoodRescue-Backend/cmd/database/migrate"
	"FoodRescue-Backend/internal/utils"

	"gorm.io/gorm"
)

func main() {
	utils.LoadConfig()

	var db *gorm.DB
	if utils.GetConfig("STORAGE_DRIVER") != "memory" {
		var err error
		db, err = config.ConnectDB()
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if err := app.Listen(":5000"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
