package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flashdeck/flashdeck-api/models"
)

var Database *gorm.DB

// Connect opens the record store and migrates the schema: postgres when
// DB_URL is set, a local sqlite file otherwise.
func Connect() error {
	var dial gorm.Dialector
	if Env.DatabaseURL != "" {
		dial = postgres.Open(Env.DatabaseURL)
	} else {
		dial = sqlite.Open("flashdeck.db")
	}

	var err error
	Database, err = gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	err = Database.AutoMigrate(&models.Set{}, &models.Card{}, &models.UserSet{}, &models.Learning{})
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	return nil
}
