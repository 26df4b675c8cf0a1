package database

import (
	"github.com/thereayou/portfolio-backend/internal/models"
	"github.com/thereayou/portfolio-backend/internal/storage"
)

func (d *Database) ListSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := d.db.Order("display_order asc, id asc").Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (d *Database) GetSkill(id string) (*models.Skill, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	skill := models.Skill{}
	if err := d.db.First(&skill, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &skill, nil
}

func (d *Database) CreateSkill(skill *models.Skill) error {
	return d.db.Create(skill).Error
}

func (d *Database) UpdateSkill(id string, upd storage.SkillUpdate) (*models.Skill, error) {
	skill, err := d.GetSkill(id)
	if err != nil {
		return nil, err
	}
	upd.Apply(skill)
	if err := d.db.Save(skill).Error; err != nil {
		return nil, err
	}
	return skill, nil
}

func (d *Database) DeleteSkill(id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	res := d.db.Delete(&models.Skill{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
