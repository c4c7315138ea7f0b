// services/template_service.go - Room Template Management
package services

import (
	"errors"

	"liverooms/models"

	"gorm.io/gorm"
)

type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

// CreateTemplate stores a new template.
func (s *TemplateService) CreateTemplate(tpl *models.RoomTemplate) (*models.RoomTemplate, error) {
	if tpl.Name == "" {
		return nil, errors.New("template name is required")
	}
	tpl.IsActive = true

	if err := s.db.Create(tpl).Error; err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *TemplateService) GetTemplate(id string) (*models.RoomTemplate, error) {
	var tpl models.RoomTemplate
	err := s.db.First(&tpl, "id = ? AND is_active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ListTemplates returns the active templates, newest first.
func (s *TemplateService) ListTemplates() ([]models.RoomTemplate, error) {
	var list []models.RoomTemplate
	err := s.db.Where("is_active = ?", true).Order("created_at DESC").Find(&list).Error
	return list, err
}

// UpdateTemplate replaces a template's default fields.
func (s *TemplateService) UpdateTemplate(id string, tpl *models.RoomTemplate) (*models.RoomTemplate, error) {
	existing, err := s.GetTemplate(id)
	if err != nil {
		return nil, err
	}

	tpl.ID = existing.ID
	tpl.IsActive = existing.IsActive
	tpl.CreatedAt = existing.CreatedAt
	if err := s.db.Save(tpl).Error; err != nil {
		return nil, err
	}
	return tpl, nil
}

// DeleteTemplate soft deletes a template. Rooms created from it keep their
// template_id reference.
func (s *TemplateService) DeleteTemplate(id string) error {
	result := s.db.Model(&models.RoomTemplate{}).Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}
