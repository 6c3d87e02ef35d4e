package repository

import (
	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DemandeCongeRepository handles database operations for leave requests
type DemandeCongeRepository struct {
	db *gorm.DB
}

// NewDemandeCongeRepository creates a new leave request repository
func NewDemandeCongeRepository(db *gorm.DB) *DemandeCongeRepository {
	return &DemandeCongeRepository{db: db}
}

// Create creates a new leave request
func (r *DemandeCongeRepository) Create(demande *models.DemandeConge) error {
	return r.db.Create(demande).Error
}

// GetByID retrieves a leave request by ID
func (r *DemandeCongeRepository) GetByID(id uuid.UUID) (*models.DemandeConge, error) {
	var demande models.DemandeConge
	err := r.db.First(&demande, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &demande, nil
}

// GetByEmployee retrieves an employee's leave requests, newest first
func (r *DemandeCongeRepository) GetByEmployee(companyID, employeeID uuid.UUID) ([]models.DemandeConge, error) {
	var demandes []models.DemandeConge
	err := r.db.Where("company_id = ? AND employee_id = ?", companyID, employeeID).
		Order("created_at DESC").Find(&demandes).Error
	if err != nil {
		return nil, err
	}
	return demandes, nil
}

// GetByCompanyAndStatus retrieves a company's leave requests in a status
func (r *DemandeCongeRepository) GetByCompanyAndStatus(companyID uuid.UUID, status models.CongeStatus) ([]models.DemandeConge, error) {
	var demandes []models.DemandeConge
	err := r.db.Where("company_id = ? AND status = ?", companyID, status).
		Order("created_at").Find(&demandes).Error
	if err != nil {
		return nil, err
	}
	return demandes, nil
}

// Update updates a leave request
func (r *DemandeCongeRepository) Update(demande *models.DemandeConge) error {
	return r.db.Save(demande).Error
}

// CountUnreadByEmployee counts decisions the requester has not read yet
func (r *DemandeCongeRepository) CountUnreadByEmployee(companyID, employeeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.DemandeConge{}).
		Where("company_id = ? AND employee_id = ? AND read_by_requester = ?", companyID, employeeID, false).
		Count(&count).Error
	return count, err
}

// MarkRead marks a leave request as read by its requester
func (r *DemandeCongeRepository) MarkRead(id uuid.UUID) error {
	return r.db.Model(&models.DemandeConge{}).Where("id = ?", id).Update("read_by_requester", true).Error
}

// Delete deletes a leave request
func (r *DemandeCongeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DemandeConge{}, "id = ?", id).Error
}
