package dto

import "github.com/thereayou/portfolio-backend/internal/storage"

type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=Frontend Backend 3D/Graphics Tools Other"`
	Proficiency int    `json:"proficiency" binding:"required,min=1,max=100"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

type UpdateSkillRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category" binding:"omitempty,oneof=Frontend Backend 3D/Graphics Tools Other"`
	Proficiency *int    `json:"proficiency" binding:"omitempty,min=1,max=100"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

func (r UpdateSkillRequest) ToUpdate() storage.SkillUpdate {
	return storage.SkillUpdate{
		Name:        r.Name,
		Category:    r.Category,
		Proficiency: r.Proficiency,
		Icon:        r.Icon,
		Order:       r.Order,
	}
}
