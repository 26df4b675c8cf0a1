package database

import (
	"github.com/thereayou/portfolio-backend/internal/models"
)

func (d *Database) ListContactMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := d.db.Order("created_at asc").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (d *Database) CreateContactMessage(msg *models.ContactMessage) error {
	return d.db.Create(msg).Error
}

func (d *Database) MarkMessageRead(id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	res := d.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *Database) DeleteContactMessage(id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	res := d.db.Delete(&models.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
