package repository

import (
	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChantierRepository handles database operations for chantiers
type ChantierRepository struct {
	db *gorm.DB
}

// NewChantierRepository creates a new chantier repository
func NewChantierRepository(db *gorm.DB) *ChantierRepository {
	return &ChantierRepository{db: db}
}

// Create creates a new chantier
func (r *ChantierRepository) Create(chantier *models.Chantier) error {
	return r.db.Create(chantier).Error
}

// GetByID retrieves a chantier by ID
func (r *ChantierRepository) GetByID(id uuid.UUID) (*models.Chantier, error) {
	var chantier models.Chantier
	err := r.db.First(&chantier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &chantier, nil
}

// GetByCode retrieves a chantier by code within a company
func (r *ChantierRepository) GetByCode(companyID uuid.UUID, code string) (*models.Chantier, error) {
	var chantier models.Chantier
	err := r.db.First(&chantier, "company_id = ? AND code = ?", companyID, code).Error
	if err != nil {
		return nil, err
	}
	return &chantier, nil
}

// GetByCompanyID retrieves all chantiers for a company with pagination
func (r *ChantierRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Chantier, int64, error) {
	var chantiers []models.Chantier
	var total int64

	query := r.db.Model(&models.Chantier{}).Where("company_id = ?", companyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("code").Limit(limit).Offset(offset).Find(&chantiers).Error
	if err != nil {
		return nil, 0, err
	}

	return chantiers, total, nil
}

// Update updates a chantier
func (r *ChantierRepository) Update(chantier *models.Chantier) error {
	return r.db.Save(chantier).Error
}

// Delete deletes a chantier
func (r *ChantierRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Chantier{}, "id = ?", id).Error
}
