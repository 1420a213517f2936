package migration

import (
	"fmt"
	"log"

	"FoodRescue-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodListing{}); err != nil {
		log.Fatalf("Error migrating food listing database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SensorData{}); err != nil {
		log.Fatalf("Error migrating sensor data database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Claim{}); err != nil {
		log.Fatalf("Error migrating claim database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Organization{}); err != nil {
		log.Fatalf("Error migrating organization database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SupplierRating{}); err != nil {
		log.Fatalf("Error migrating supplier rating database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
