package database

import (
	"time"

	"github.com/thereayou/portfolio-backend/internal/models"
)

func (d *Database) GetAbout() (*models.AboutInfo, error) {
	info := models.AboutInfo{}
	if err := d.db.First(&info, "id = ?", models.AboutInfoID).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &info, nil
}

// UpsertAbout creates the singleton row on first call and replaces its
// fields on every later one. The id is always AboutInfoID.
func (d *Database) UpsertAbout(info *models.AboutInfo) (*models.AboutInfo, error) {
	info.ID = models.AboutInfoID
	info.UpdatedAt = time.Now()
	if err := d.db.Save(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}
