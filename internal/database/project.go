package database

import (
	"github.com/thereayou/portfolio-backend/internal/models"
	"github.com/thereayou/portfolio-backend/internal/storage"
)

func (d *Database) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	err := d.db.Order("display_order asc, id asc").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (d *Database) GetProject(id string) (*models.Project, error) {
	if !validID(id) {
		return nil, storage.ErrNotFound
	}
	project := models.Project{}
	if err := d.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &project, nil
}

func (d *Database) CreateProject(project *models.Project) error {
	return d.db.Create(project).Error
}

func (d *Database) UpdateProject(id string, upd storage.ProjectUpdate) (*models.Project, error) {
	project, err := d.GetProject(id)
	if err != nil {
		return nil, err
	}
	upd.Apply(project)
	if err := d.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (d *Database) DeleteProject(id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	res := d.db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
