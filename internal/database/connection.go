package database

import (
	"errors"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/thereayou/portfolio-backend/internal/models"
)

// Connect opens the postgres connection from DATABASE_URL and migrates
// the portfolio schema.
func Connect() (*Database, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Skill{},
		&models.ContactMessage{},
		&models.AboutInfo{},
	)
	if err != nil {
		return nil, err
	}

	return NewDatabase(db), nil
}
