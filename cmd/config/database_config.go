package config

import (
	"fmt"
	"log"

	"cooktok/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the store selected by DB_DRIVER: a local sqlite file by
// default, postgres when configured.
func ConnectDB() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch utils.GetConfig("DB_DRIVER") {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(utils.GetConfig("DB_PATH")), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
