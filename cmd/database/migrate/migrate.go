package migration

import (
	"fmt"
	"log"

	"cooktok/entities"

	"gorm.io/gorm"
)

// Migrate creates or updates the five tables. Schema upgrades are
// destructive-by-default auto-migrations; there is no versioned
// migration history.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Cuisine{}); err != nil {
		log.Fatalf("Error migrating cuisine database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SavedRecipe{}); err != nil {
		log.Fatalf("Error migrating saved recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealPlan{}); err != nil {
		log.Fatalf("Error migrating meal plan database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
