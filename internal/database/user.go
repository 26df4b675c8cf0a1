package database

import (
	"github.com/thereayou/portfolio-backend/internal/models"
	"github.com/thereayou/portfolio-backend/internal/storage"
)

func (d *Database) GetUser(id string) (*models.User, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (d *Database) GetUserByUsername(username string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (d *Database) CreateUser(user *models.User) error {
	return d.db.Create(user).Error
}
